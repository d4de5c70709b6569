package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
)

// ListPosts GET /api/posts
func (t *Type) ListPosts(ctx *gin.Context) {
	filter := new(dto.PostFilter)
	if err := ctx.ShouldBindQuery(filter); err != nil {
		abortBindErr(ctx, err)
		return
	}

	posts, err := t.svc.ListPosts(ctx.Request.Context(), filter)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetPost GET /api/posts/:id
func (t *Type) GetPost(ctx *gin.Context) {
	post, err := t.svc.GetPost(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// CreatePost POST /api/posts
func (t *Type) CreatePost(ctx *gin.Context) {
	req := new(dto.PostRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	post, err := t.svc.CreatePost(ctx.Request.Context(), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// PublishPost POST /api/posts/publish, creates or updates depending on the
// presence of an id in the payload.
func (t *Type) PublishPost(ctx *gin.Context) {
	req := new(dto.PostRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	post, err := t.svc.PublishPost(ctx.Request.Context(), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// UpdatePost PUT /api/posts/:id
func (t *Type) UpdatePost(ctx *gin.Context) {
	req := new(dto.PostRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	post, err := t.svc.UpdatePost(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// DeletePost DELETE /api/posts/:id
func (t *Type) DeletePost(ctx *gin.Context) {
	if err := t.svc.DeletePost(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
