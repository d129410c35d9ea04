package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contentTypeHTML = "text/html; charset=utf-8"

// HTML writes a complete HTML document with the given status.
func HTML(c *gin.Context, status int, document string) {
	c.Data(status, contentTypeHTML, []byte(document))
}

// OK writes a 200 OK HTML response.
func OK(c *gin.Context, document string) {
	HTML(c, http.StatusOK, document)
}
