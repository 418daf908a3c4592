package httpx

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
)

// Status maps an error kind to its HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as {"error": msg}. Server-side causes are logged
// and replaced with a generic message.
func WriteError(c *gin.Context, err error) {
	WriteErrorStatus(c, Status(err), err)
}

func WriteErrorStatus(c *gin.Context, status int, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		rid, _ := c.Get("rid")
		cause := apperr.Cause(err)
		if cause == nil {
			cause = err
		}
		log.Printf("[http] rid=%v %s %s err=%v", rid, c.Request.Method, c.Request.URL.Path, cause)
		var ae *apperr.Error
		if !errors.As(err, &ae) {
			msg = "internal server error"
		}
	}
	c.JSON(status, gin.H{"error": msg})
}
