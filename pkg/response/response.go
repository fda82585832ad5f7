package response

import (
	stdErrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "meeting-scheduler/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error body. HTTPErrors keep their status; anything else is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !stdErrors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}

	c.AbortWithStatusJSON(httpErr.Code, Resp{
		Message: httpErr.Message,
		Error:   httpErr.Detail,
	})
}

// InternalError sends 500 with the generic message and err as detail.
func InternalError(c *gin.Context, err error) {
	resp := Resp{Message: DefaultErrorMessage}
	if err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.ErrUnauthorized)
}

// MethodNotAllowed sends 405 response.
func MethodNotAllowed(c *gin.Context) {
	Error(c, pkgErrors.ErrMethodNotAllowed)
}
