// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/plugin"
	"github.com/thatcatcamp/forewind/internal/themes"
	"github.com/thatcatcamp/forewind/internal/vars"
)

type expandRequest struct {
	Palette *palette.Palette `json:"palette" binding:"required"`
	Format  string           `json:"format"`
}

type projectRequest struct {
	Palette   *palette.Palette `json:"palette" binding:"required"`
	Prefix    string           `json:"prefix"`
	Separator string           `json:"separator"`
	Mode      string           `json:"mode"`
	Alpha     bool             `json:"alpha"`
	Nested    bool             `json:"nested"`
}

type buildRequest struct {
	Palette *palette.Palette `json:"palette"`
	Dynamic *bool            `json:"dynamic"`
	Prefix  string           `json:"prefix"`
	Format  string           `json:"format"`
	Plugins []plugin.Ref     `json:"plugins"`
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// ExpandHandler expands every color of the posted palette into a full scale
func (s *Server) ExpandHandler(c *gin.Context) {
	var req expandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	format, err := palette.ParseFormat(req.Format)
	if err != nil {
		badRequest(c, err)
		return
	}

	expanded, err := palette.ExpandPalette(req.Palette, format)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.PureJSON(http.StatusOK, expanded)
}

// ProjectHandler expands the posted palette and maps it onto variable names,
// either flat (key -> value) or nested for a build pipeline
func (s *Server) ProjectHandler(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	projection, err := vars.ParseMode(req.Mode)
	if err != nil {
		badRequest(c, err)
		return
	}

	expanded, err := palette.ExpandPalette(req.Palette, palette.FormatHex)
	if err != nil {
		s.fail(c, err)
		return
	}

	opts := vars.Options{
		Prefix:    req.Prefix,
		Separator: req.Separator,
		Mode:      projection,
		Alpha:     req.Alpha,
	}
	if req.Nested {
		nested, err := vars.ThemeVars(expanded, opts)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.PureJSON(http.StatusOK, nested)
		return
	}

	flat, err := vars.Project(expanded, opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.PureJSON(http.StatusOK, flat)
}

// BuildHandler runs the plugin adapter for a host described in the request.
// It returns the framework configuration and the base CSS the plugin adds.
func (s *Server) BuildHandler(c *gin.Context) {
	var req buildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	format, err := palette.ParseFormat(req.Format)
	if err != nil {
		badRequest(c, err)
		return
	}

	dynamic := true
	if req.Dynamic != nil {
		dynamic = *req.Dynamic
	}
	prefix := req.Prefix
	if prefix == "" {
		prefix = s.opts.Prefix
	}

	p := plugin.New(plugin.Options{
		Dynamic: dynamic,
		Prefix:  prefix,
		Format:  format,
		Colors:  req.Palette,
	}, nil, s.logger)

	cfg, err := p.Config(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	plugins := req.Plugins
	if plugins == nil {
		plugins = []plugin.Ref{plugin.FormsRef()}
	}
	host := &plugin.MemoryHost{PluginList: plugins}
	if err := p.Extend(host); err != nil {
		s.fail(c, err)
		return
	}

	var css strings.Builder
	themes.WriteBlocks(&css, host.Base)

	c.PureJSON(http.StatusOK, gin.H{
		"config": cfg,
		"css":    css.String(),
	})
}
