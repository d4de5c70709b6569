package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
)

// ListCategories GET /api/categories
func (t *Type) ListCategories(ctx *gin.Context) {
	cates, err := t.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cates)
}

// GetCategory GET /api/categories/:id
func (t *Type) GetCategory(ctx *gin.Context) {
	cate, err := t.svc.GetCategory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cate)
}

// CreateCategory POST /api/categories
func (t *Type) CreateCategory(ctx *gin.Context) {
	req := new(dto.CategoryRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	cate, err := t.svc.CreateCategory(ctx.Request.Context(), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cate)
}

// UpdateCategory PUT /api/categories/:id
func (t *Type) UpdateCategory(ctx *gin.Context) {
	req := new(dto.CategoryRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	cate, err := t.svc.UpdateCategory(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cate)
}
