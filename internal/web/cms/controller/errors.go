package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/lantern-cms/lantern/internal/web/cms/model"
	"github.com/lantern-cms/lantern/library/log"
)

// abortErr translates service errors into HTTP status codes. Unexpected
// errors are logged with their stack and masked as a bare 500; sentinel
// errors carry safe messages and pass through.
func abortErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrDuplicateSlug),
		errors.Is(err, model.ErrInvalidSchedule):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrTrashed):
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": model.ErrInvalidCredentials.Error()})
	default:
		log.Logger.Error("handle request",
			zap.Error(err),
			zap.String("path", ctx.Request.URL.Path))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// abortBindErr reports a malformed request payload.
func abortBindErr(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
