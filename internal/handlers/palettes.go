// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/forewind/internal/backup"
	"github.com/thatcatcamp/forewind/internal/middleware"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"github.com/thatcatcamp/forewind/internal/themes"
)

type paletteSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

type savePaletteRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Palette     *palette.Palette `json:"palette" binding:"required"`
}

// ListPalettesHandler lists presets followed by stored palettes
func (s *Server) ListPalettesHandler(c *gin.Context) {
	var out []paletteSummary
	for _, preset := range themes.ListPresets() {
		out = append(out, paletteSummary{Name: preset.Name, Source: "preset"})
	}

	records, err := store.ListPalettes(s.db)
	if err != nil {
		s.fail(c, err)
		return
	}
	for _, r := range records {
		out = append(out, paletteSummary{Name: r.Name, Description: r.Description, Source: "stored"})
	}

	c.JSON(http.StatusOK, gin.H{"palettes": out})
}

// GetPaletteHandler returns the expanded palette, hex by default or RGB
// channels with ?format=channels
func (s *Server) GetPaletteHandler(c *gin.Context) {
	format, err := palette.ParseFormat(c.Query("format"))
	if err != nil {
		badRequest(c, err)
		return
	}

	expanded, err := palette.ExpandPalette(resolved(c).Palette, format)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.PureJSON(http.StatusOK, expanded)
}

// paletteCSS renders the palette under :root followed by the base styles
func (s *Server) paletteCSS(p *palette.Palette) (string, error) {
	root, err := themes.PaletteRoot(p, s.opts.Prefix)
	if err != nil {
		return "", err
	}
	return themes.GenerateCSS([]themes.Block{root}), nil
}

// PaletteCSSHandler serves the palette as a stylesheet
func (s *Server) PaletteCSSHandler(c *gin.Context) {
	css, err := s.paletteCSS(resolved(c).Palette)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// CreatePaletteHandler stores a new palette
func (s *Server) CreatePaletteHandler(c *gin.Context) {
	var req savePaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if themes.GetPreset(req.Name) != nil {
		s.fail(c, fmt.Errorf("palette %s is a preset: %w", req.Name, store.ErrExists))
		return
	}

	record, err := store.CreatePalette(s.db, req.Name, req.Description, req.Palette)
	if err != nil {
		s.fail(c, err)
		return
	}
	middleware.InvalidatePalette(record.Name)

	s.logger.Info().Str("palette", record.Name).Msg("palette saved")
	c.JSON(http.StatusCreated, paletteSummary{Name: record.Name, Description: record.Description, Source: "stored"})
}

// UpdatePaletteHandler replaces the colors of a stored palette
func (s *Server) UpdatePaletteHandler(c *gin.Context) {
	var req savePaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	name := c.Param("name")
	record, err := store.UpdatePalette(s.db, name, req.Palette)
	if err != nil {
		s.fail(c, err)
		return
	}
	middleware.InvalidatePalette(name)

	s.logger.Info().Str("palette", name).Msg("palette updated")
	c.JSON(http.StatusOK, paletteSummary{Name: record.Name, Description: record.Description, Source: "stored"})
}

// DeletePaletteHandler removes a stored palette
func (s *Server) DeletePaletteHandler(c *gin.Context) {
	name := c.Param("name")
	if err := store.DeletePalette(s.db, name); err != nil {
		s.fail(c, err)
		return
	}
	middleware.InvalidatePalette(name)

	s.logger.Info().Str("palette", name).Msg("palette deleted")
	c.Status(http.StatusNoContent)
}

// ExportPalettesHandler downloads every stored palette as a backup bundle
func (s *Server) ExportPalettesHandler(c *gin.Context) {
	bundle, err := backup.NewManager(s.db, nil, "", s.logger).Export(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="palettes.json"`)
	c.PureJSON(http.StatusOK, bundle)
}
