package controller

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the REST API. Reads are public; every mutation sits
// behind the login middleware.
func RegisterRoutes(r gin.IRouter, t *Type) {
	api := r.Group("/api")

	api.POST("/login", t.Login)

	api.GET("/posts", t.ListPosts)
	api.GET("/posts/:id", t.GetPost)
	api.POST("/posts", RequireLogin, t.CreatePost)
	api.POST("/posts/publish", RequireLogin, t.PublishPost)
	api.PUT("/posts/:id", RequireLogin, t.UpdatePost)
	api.DELETE("/posts/:id", RequireLogin, t.DeletePost)

	api.GET("/categories", t.ListCategories)
	api.GET("/categories/:id", t.GetCategory)
	api.POST("/categories", RequireLogin, t.CreateCategory)
	api.PUT("/categories/:id", RequireLogin, t.UpdateCategory)

	api.GET("/tags", t.ListTags)
	api.GET("/tags/:id", t.GetTag)
	api.POST("/tags", RequireLogin, t.CreateTag)
	api.PUT("/tags/:id", RequireLogin, t.UpdateTag)
	api.DELETE("/tags/:id", RequireLogin, t.DeleteTag)

	api.GET("/images", t.ListImages)
	api.GET("/images/:id", t.GetImage)
	api.POST("/images", RequireLogin, t.RegisterImage)
	api.PUT("/images/:id", RequireLogin, t.UpdateImage)
	api.DELETE("/images/:id", RequireLogin, t.DeleteImage)

	api.GET("/users", RequireLogin, t.ListUsers)
	api.GET("/users/:id", RequireLogin, t.GetUser)
	api.POST("/users", RequireLogin, t.CreateUser)
	api.PUT("/users/:id", RequireLogin, t.UpdateUser)
	api.DELETE("/users/:id", RequireLogin, t.DeleteUser)
}
