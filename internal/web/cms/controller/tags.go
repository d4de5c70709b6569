package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
)

// ListTags GET /api/tags
func (t *Type) ListTags(ctx *gin.Context) {
	tags, err := t.svc.ListTags(ctx.Request.Context())
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

// GetTag GET /api/tags/:id
func (t *Type) GetTag(ctx *gin.Context) {
	tag, err := t.svc.GetTag(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

// CreateTag POST /api/tags
func (t *Type) CreateTag(ctx *gin.Context) {
	req := new(dto.TagRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	tag, err := t.svc.CreateTag(ctx.Request.Context(), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, tag)
}

// UpdateTag PUT /api/tags/:id
func (t *Type) UpdateTag(ctx *gin.Context) {
	req := new(dto.TagRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	tag, err := t.svc.UpdateTag(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

// DeleteTag DELETE /api/tags/:id
func (t *Type) DeleteTag(ctx *gin.Context) {
	if err := t.svc.DeleteTag(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
