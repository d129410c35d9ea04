package respond

import (
	"html"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cgi-wizard/internal/shared/telemetry"
)

// Error logs the failure and aborts with a minimal HTML error page. The
// message is shown to the user, so it must stay generic.
func Error(c *gin.Context, status int, code, message string, details map[string]any) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	for k, v := range details {
		fields[k] = v
	}
	telemetry.Error("http.error", fields)

	c.Abort()
	HTML(c, status, ErrorPage(status, message))
}

// ErrorPage renders the body used for error responses.
func ErrorPage(status int, message string) string {
	title := strconv.Itoa(status) + " " + http.StatusText(status)
	return "<!DOCTYPE html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) +
		"</title></head><body><h1>" + html.EscapeString(title) + "</h1><p>" + html.EscapeString(message) +
		"</p><p><a href='?reset=1'>Start over</a></p></body></html>"
}
