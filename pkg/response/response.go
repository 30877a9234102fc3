package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-web/pkg/errors"
)

// OK sends 200 {"success": true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Resp{Success: true})
}

// Error sends the status and message of an HTTPError. Any other error becomes
// a generic 500 so internal detail never reaches the client.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.ErrInternalServerError
	}

	c.JSON(httpErr.StatusCode, Resp{
		Success: false,
		Message: httpErr.Message,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	Error(c, pkgErrors.ErrInternalServerError)
}

// Unauthorized sends 401 with a Basic challenge for realm and aborts the chain.
func Unauthorized(c *gin.Context, realm string) {
	c.Header("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		Success: false,
		Message: pkgErrors.ErrUnauthorized.Message,
	})
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Message: pkgErrors.ErrTooManyRequests.Message,
	})
}
