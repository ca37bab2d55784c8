package respond

import (
	"github.com/gin-gonic/gin"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Fail maps err onto its status and code and sends message to the caller. The
// wrapped error text is logged, not returned.
func Fail(c *gin.Context, err error, message string) {
	status, code := apperr.HTTPStatus(err)
	telemetry.Warn("http.failure_cause", map[string]any{
		"request_id": c.GetString("requestId"),
		"code":       code,
		"error":      err.Error(),
	})
	if message == "" {
		message = err.Error()
	}
	Error(c, status, code, message, nil)
}
