package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "marketing-cms/internal/transport/http/response"
)

// MaxBodyBytes caps request body size.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			resp.BadRequest(c, "Request body too large")
			c.Abort()
		}
	}
}
