package respond

import (
	"github.com/gin-gonic/gin"

	"resume-renderer/internal/shared/telemetry"
)

// InternalErrorMessage is the only detail a client sees for a 5xx.
const InternalErrorMessage = "An internal server error occurred while generating the file."

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure under a machine-readable code and sends
// {"error": message}.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
