package middleware

import (
	"net/http"

	"micropay-gateway/pkg/apperror"
	"micropay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize limits the request body to maxBytes. Requests that declare a larger
// Content-Length are rejected with 413 up front; others fail when the reader
// crosses the limit, which surfaces as a binding error.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Abort(c, apperror.New(apperror.CodeInvalidRequest, "Request body too large", http.StatusRequestEntityTooLarge))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
