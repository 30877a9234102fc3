package http

import (
	"errors"
	"net/http"

	"todo-web/internal/todo"
	pkgErrors "todo-web/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a bare 500.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, todo.ErrInvalidFilename):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid todo list filename")
	case errors.Is(err, todo.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "item_index (integer) and done (boolean) are required")
	case errors.Is(err, todo.ErrListNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "todo list not found")
	case errors.Is(err, todo.ErrMalformedList):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "todo list file is malformed")
	case errors.Is(err, todo.ErrItemIndexOutOfRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "item_index is out of range")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
