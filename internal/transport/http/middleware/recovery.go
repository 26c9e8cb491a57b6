package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "marketing-cms/internal/transport/http/response"
)

// Recovery converts panics into a 500 envelope instead of crashing the
// process. Details stay in the log, never in the response.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
				)
				resp.Internal(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
