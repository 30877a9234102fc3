package http

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/middleware"
)

// RegisterRoutes maps the todo pages onto rg. Every route sits behind Auth.
func RegisterRoutes(rg gin.IRoutes, h Handler, mw middleware.Middleware) {
	rg.GET("/", mw.Auth(), h.Index)
	rg.GET("/todo/:filename", mw.Auth(), h.Detail)
	rg.POST("/todo/:filename", mw.Auth(), h.UpdateItem)
}
