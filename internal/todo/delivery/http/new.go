package http

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/todo"
	"todo-web/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	Index(c *gin.Context)
	Detail(c *gin.Context)
	UpdateItem(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
