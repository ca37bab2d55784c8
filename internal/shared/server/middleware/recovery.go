package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-roast/internal/shared/metrics"
	"resume-roast/internal/shared/server/respond"
	"resume-roast/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 error envelope. If the handler had
// already started writing, the response is left as is.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			route := c.FullPath()
			telemetry.Error("panic", map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
				"path":       c.Request.URL.Path,
				"route":      route,
				"method":     c.Request.Method,
			})
			metrics.IncRequest("panic", metrics.OutcomeFailed)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
