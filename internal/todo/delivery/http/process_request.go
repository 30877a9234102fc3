package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-web/internal/todo"
)

// processUpdateReq binds and validates the update form + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	req.Filename = c.Param("filename")
	if err := todo.ValidateFilename(req.Filename); err != nil {
		return req, err
	}
	// The form mapper turns an empty value into the zero value, which would
	// pass the required check.
	for _, field := range []string{"item_index", "done"} {
		if v, ok := c.GetPostForm(field); !ok || strings.TrimSpace(v) == "" {
			return req, fmt.Errorf("%w: %s is required", todo.ErrInvalidPayload, field)
		}
	}
	if err := c.ShouldBind(&req); err != nil {
		return req, fmt.Errorf("%w: %v", todo.ErrInvalidPayload, err)
	}
	return req, req.validate()
}
