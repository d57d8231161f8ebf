package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zachkp/folio/content"
)

// app bundles what the handlers share.
type app struct {
	cfg       *Config
	log       zerolog.Logger
	store     *content.Store
	render    *renderer
	analytics *Analytics // nil when analytics is disabled
	admin     *adminAuth // nil when no admin password is set
}

// adminMounted reports whether the admin pages are served. They need both a
// password and the visits store.
func (a *app) adminMounted() bool { return a.admin != nil && a.analytics != nil }

func newRouter(a *app) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(a.log), recovery(a.log))
	r.SetHTMLTemplate(a.render.tmpl)

	if a.analytics != nil {
		r.Use(visitTracking(a.analytics))
	}

	r.Static("/static", a.cfg.StaticDir)
	if a.cfg.ImagesDir != "" {
		r.Static("/images", a.cfg.ImagesDir)
	}

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", a.render.index())
	})
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", a.render.privacy())
	})
	r.GET("/terms", func(c *gin.Context) {
		c.HTML(http.StatusOK, "terms.html", a.render.terms())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.store.Site())
	})
	api.GET("/sections", func(c *gin.Context) {
		c.JSON(http.StatusOK, content.Sections(a.store.Site()))
	})

	if a.adminMounted() {
		setupAdminRoutes(r, a)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		renderError(c, http.StatusNotFound, "The page you are looking for does not exist.")
	})
	return r
}

func renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{
		"Status": status,
		"Error":  msg,
	})
}
