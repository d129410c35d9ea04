// Command cgi serves a single wizard request under a CGI-capable web
// server: REQUEST_METHOD, QUERY_STRING and CONTENT_LENGTH come from the
// environment, the body from stdin, and the response goes to stdout.
package main

import (
	"log"
	"net/http/cgi"
	"os"

	"github.com/gin-gonic/gin"

	"cgi-wizard/internal/shared/config"
	"cgi-wizard/internal/shared/server"
	"cgi-wizard/internal/shared/telemetry"
)

func main() {
	// stdout is the response; everything else goes to stderr.
	telemetry.SetOutput(os.Stderr)
	gin.DefaultWriter = os.Stderr
	gin.DefaultErrorWriter = os.Stderr
	log.SetOutput(os.Stderr)

	cfg := config.Load()
	cfg.Mode = config.ModeCGI
	r := server.NewRouter(cfg)

	if err := cgi.Serve(r); err != nil {
		log.Printf("cgi error: %v", err)
		os.Exit(1)
	}
}
