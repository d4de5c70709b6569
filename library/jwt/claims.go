// Package jwt defines the bearer token claims shared across the service.
package jwt

import (
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the authenticated user identity inside bearer tokens.
// Subject holds the user id in hex.
type UserClaims struct {
	jwtLib.RegisteredClaims
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
