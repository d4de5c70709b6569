// Package auth holds the shared authentication middleware instance.
package auth

import (
	ginMw "github.com/Laisky/gin-middlewares/v7"
)

var Instance *ginMw.Auth

func Initialize(secret []byte) (err error) {
	Instance, err = ginMw.NewAuth(secret)
	return err
}
