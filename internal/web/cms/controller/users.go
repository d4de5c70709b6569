package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
)

// ListUsers GET /api/users
func (t *Type) ListUsers(ctx *gin.Context) {
	users, err := t.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetUser GET /api/users/:id
func (t *Type) GetUser(ctx *gin.Context) {
	user, err := t.svc.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// CreateUser POST /api/users
func (t *Type) CreateUser(ctx *gin.Context) {
	req := new(dto.UserRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	user, err := t.svc.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// UpdateUser PUT /api/users/:id
func (t *Type) UpdateUser(ctx *gin.Context) {
	req := new(dto.UserRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBindErr(ctx, err)
		return
	}

	user, err := t.svc.UpdateUser(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// DeleteUser DELETE /api/users/:id
func (t *Type) DeleteUser(ctx *gin.Context) {
	if err := t.svc.DeleteUser(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
