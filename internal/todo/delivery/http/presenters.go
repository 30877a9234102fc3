package http

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/todo"
	pkgErrors "todo-web/pkg/errors"
)

const (
	templateIndex = "index.html"
	templateTodo  = "todo.html"
	templateError = "error.html"
)

// --- Request DTOs ---

type updateReq struct {
	Filename  string `json:"-" form:"-"` // populated from URI param
	ItemIndex *int   `json:"item_index" form:"item_index" binding:"required"`
	Done      *bool  `json:"done"       form:"done"       binding:"required"`
}

func (r updateReq) validate() error {
	if r.ItemIndex == nil || r.Done == nil {
		return todo.ErrInvalidPayload
	}
	return nil
}

func (r updateReq) toInput() todo.UpdateItemInput {
	return todo.UpdateItemInput{
		Filename: r.Filename,
		Index:    *r.ItemIndex,
		Done:     *r.Done,
	}
}

// --- Page data ---

func newIndexPage(out todo.ListListsOutput) gin.H {
	return gin.H{
		"title":      "Todo Lists",
		"todo_files": out.Filenames,
	}
}

func newTodoPage(out todo.DetailOutput) gin.H {
	return gin.H{
		"title":    out.Filename,
		"filename": out.Filename,
		"items":    out.Items,
		"stats":    out.Stats,
	}
}

func newErrorPage(httpErr *pkgErrors.HTTPError) gin.H {
	return gin.H{
		"title":   httpErr.Message,
		"status":  httpErr.StatusCode,
		"message": httpErr.Message,
	}
}
