package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-web/internal/middleware"
	"todo-web/pkg/response"
)

// Index godoc
// @Summary     List todo lists
// @Description Renders an HTML page linking every *.json list in the todo directory.
// @Tags        Todo
// @Produce     html
// @Security    BasicAuth
// @Success     200 {string} string "HTML page"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {string} string "HTML error page"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	output, err := h.uc.ListLists(ctx, sc)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, templateIndex, newIndexPage(output))
}

// Detail godoc
// @Summary     Show one todo list
// @Description Renders an HTML page with the list's filename and every item with its task and done flag.
// @Tags        Todo
// @Produce     html
// @Security    BasicAuth
// @Param       filename path string true "List filename, e.g. groceries.json"
// @Success     200 {string} string "HTML page"
// @Failure     400 {string} string "Invalid filename or malformed list"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {string} string "List not found"
// @Router      /todo/{filename} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	output, err := h.uc.Detail(ctx, sc, c.Param("filename"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, templateTodo, newTodoPage(output))
}

// UpdateItem godoc
// @Summary     Set an item's done flag
// @Description Sets items[item_index].done and writes the whole list back to its file.
// @Tags        Todo
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Security    BasicAuth
// @Param       filename   path     string true "List filename"
// @Param       item_index formData int    true "Zero-based item index"
// @Param       done       formData bool   true "New done flag"
// @Success     200 {object} response.Resp "{"success": true}"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /todo/{filename} [POST]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processUpdateReq: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if _, err := h.uc.UpdateItem(ctx, sc, req.toInput()); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c)
}

// renderError renders the HTML error page for err.
func (h *handler) renderError(c *gin.Context, err error) {
	httpErr := h.mapError(err)
	c.HTML(httpErr.StatusCode, templateError, newErrorPage(httpErr))
}
