package controller

import (
	"net/http"
	"time"

	"github.com/Laisky/errors/v2"
	ginMw "github.com/Laisky/gin-middlewares/v7"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	jwtLib "github.com/golang-jwt/jwt/v5"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
	"github.com/lantern-cms/lantern/library/auth"
	"github.com/lantern-cms/lantern/library/jwt"
	"github.com/lantern-cms/lantern/library/log"
)

const tokenLifetime = 7 * 24 * time.Hour

// Login POST /api/login, validates the credentials and issues a bearer token
// that is also set as a login cookie.
func (t *Type) Login(ctx *gin.Context) {
	req := new(dto.LoginRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	user, err := t.svc.ValidateLogin(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		log.Logger.Debug("login rejected", zap.Error(err))
		abortErr(ctx, err)
		return
	}

	uc := &jwt.UserClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			Subject: user.ID.Hex(),
			IssuedAt: &jwtLib.NumericDate{
				Time: gutils.Clock.GetUTCNow(),
			},
			ExpiresAt: &jwtLib.NumericDate{
				Time: gutils.Clock.GetUTCNow().Add(tokenLifetime),
			},
		},
		Username:    user.Username,
		DisplayName: user.FirstName + " " + user.LastName,
	}

	token, err := auth.Instance.SetLoginCookiev2(ctx, ginMw.WithAuthClaims(uc))
	if err != nil {
		abortErr(ctx, errors.Wrap(err, "set login cookie"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// RequireLogin aborts with 401 unless the request carries a valid token.
func RequireLogin(ctx *gin.Context) {
	uc := new(jwt.UserClaims)
	if err := auth.Instance.GetUserClaims(ctx, uc); err != nil {
		log.Logger.Debug("token rejected", zap.Error(err))
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx.Next()
}
