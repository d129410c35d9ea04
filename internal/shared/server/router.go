package server

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"cgi-wizard/internal/services/health"
	"cgi-wizard/internal/shared/config"
	"cgi-wizard/internal/shared/metrics"
	"cgi-wizard/internal/shared/server/middleware"
	"cgi-wizard/internal/shared/util"
	"cgi-wizard/internal/wizard"
)

//go:embed static/style.css
var stylesheet []byte

var stylesheetETag = util.ETag(stylesheet)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	svc := &wizard.Service{
		Title:      cfg.AppTitle,
		Stylesheet: cfg.StylesheetURL,
		Options:    wizard.Options{EnforceValidation: cfg.EnforceValidation},
	}
	wizardHandler := wizard.NewHandler(svc, cfg.MaxBodyBytes)
	healthSvc := health.NewService(svc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthSvc.Status(c.Request.Context()))
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/style.css", serveStylesheet)
	wizardHandler.RegisterRoutes(r)

	// A CGI script is mounted at an arbitrary path; every request is a wizard page.
	if cfg.Mode == config.ModeCGI {
		r.NoRoute(wizardHandler.Page)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

func serveStylesheet(c *gin.Context) {
	c.Header("ETag", stylesheetETag)
	c.Header("Cache-Control", "public, max-age=3600")
	if c.GetHeader("If-None-Match") == stylesheetETag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", stylesheet)
}
