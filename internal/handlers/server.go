// SPDX-License-Identifier: MIT

// Package handlers serves palettes, stylesheets and the color mode over HTTP.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/forewind/internal/auth"
	"github.com/thatcatcamp/forewind/internal/middleware"
	"github.com/thatcatcamp/forewind/internal/mode"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/plugin"
	"github.com/thatcatcamp/forewind/internal/store"
	"github.com/thatcatcamp/forewind/internal/vars"
	"gorm.io/gorm"
)

// Options configures the HTTP surface
type Options struct {
	Prefix        string        // root variable prefix, "color" when empty
	RateLimit     int           // API requests per client per minute; 0 disables limiting
	CacheTTL      time.Duration // palette resolution cache lifetime
	BlockedIPs    []string      // CIDR ranges refused everywhere
	APIAllowedIPs []string      // CIDR ranges allowed to call write endpoints; empty allows all
	ModeFallback  string
}

// Server holds what the handlers share
type Server struct {
	db      *gorm.DB
	logger  zerolog.Logger
	modes   *mode.Manager
	opts    Options
	limiter *middleware.RateLimiter
}

// NewServer creates the handler set. The color mode is persisted in the
// settings table.
func NewServer(logger zerolog.Logger, database *gorm.DB, opts Options) *Server {
	if opts.Prefix == "" {
		opts.Prefix = "color"
	}
	s := &Server{
		db:     database,
		logger: logger,
		modes:  mode.NewManager(store.SettingStore{DB: database}, opts.ModeFallback),
		opts:   opts,
	}
	if opts.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(opts.RateLimit, time.Minute)
	}
	return s
}

// Close stops background work
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// Setup registers every route on r
func (s *Server) Setup(r *gin.Engine) {
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.IPFilterMiddleware(s.opts.BlockedIPs, nil))

	// System routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "forewind",
		})
	})

	r.GET("/palettes", s.ListPalettesHandler)

	paletteGroup := r.Group("/palettes/:name")
	paletteGroup.Use(middleware.PaletteResolutionMiddleware(s.db, s.opts.CacheTTL))
	{
		paletteGroup.GET("", s.GetPaletteHandler)
		paletteGroup.GET("/css", s.PaletteCSSHandler)
		paletteGroup.GET("/preview", s.PreviewHandler)
	}

	api := r.Group("/api")
	if s.limiter != nil {
		api.Use(middleware.RateLimitMiddleware(s.limiter))
	}
	{
		api.POST("/expand", s.ExpandHandler)
		api.POST("/project", s.ProjectHandler)
		api.POST("/build", s.BuildHandler)

		api.GET("/mode", s.GetModeHandler)
		api.POST("/mode", s.SetModeHandler)
		api.POST("/mode/toggle", s.ToggleModeHandler)
		api.DELETE("/mode", s.ResetModeHandler)

		// Write endpoints need a bearer token
		protected := api.Group("/palettes")
		protected.Use(middleware.IPFilterMiddleware(nil, s.opts.APIAllowedIPs))
		protected.Use(auth.RequireToken())
		{
			protected.GET("/export", s.ExportPalettesHandler)
			protected.POST("", s.CreatePaletteHandler)
			protected.PUT("/:name", s.UpdatePaletteHandler)
			protected.DELETE("/:name", s.DeletePaletteHandler)
		}
	}
}

// errorStatus maps domain errors onto HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, palette.ErrInvalidColor),
		errors.Is(err, palette.ErrUnsupportedShape),
		errors.Is(err, vars.ErrInvalidSeparator),
		errors.Is(err, store.ErrInvalidName),
		errors.Is(err, mode.ErrInvalidMode):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrExists):
		return http.StatusConflict
	case errors.Is(err, plugin.ErrMissingDependency):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// resolved returns the palette set by the resolution middleware
func resolved(c *gin.Context) *middleware.Resolved {
	val, exists := c.Get("palette")
	if !exists {
		return nil
	}
	return val.(*middleware.Resolved)
}
