package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
)

// ListImages GET /api/images
func (t *Type) ListImages(ctx *gin.Context) {
	imgs, err := t.svc.ListImages(ctx.Request.Context())
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, imgs)
}

// GetImage GET /api/images/:id
func (t *Type) GetImage(ctx *gin.Context) {
	img, err := t.svc.GetImage(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, img)
}

// RegisterImage POST /api/images
func (t *Type) RegisterImage(ctx *gin.Context) {
	req := new(dto.ImageRegisterRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	img, err := t.svc.RegisterImage(ctx.Request.Context(), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, img)
}

// UpdateImage PUT /api/images/:id
func (t *Type) UpdateImage(ctx *gin.Context) {
	req := new(dto.ImageRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	img, err := t.svc.UpdateImage(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, img)
}

// DeleteImage DELETE /api/images/:id
func (t *Type) DeleteImage(ctx *gin.Context) {
	if err := t.svc.DeleteImage(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
