// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/forewind/internal/mode"
)

type modeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func modeResponse(c *gin.Context, m mode.Mode) {
	c.JSON(http.StatusOK, gin.H{
		"mode":  m,
		"class": mode.RootClass(m),
	})
}

// GetModeHandler returns the persisted color mode
func (s *Server) GetModeHandler(c *gin.Context) {
	current, err := s.modes.Current(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	modeResponse(c, current)
}

// SetModeHandler persists an explicit color mode
func (s *Server) SetModeHandler(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	m, err := mode.Parse(req.Mode)
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.modes.Set(c.Request.Context(), m); err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info().Str("mode", string(m)).Msg("color mode set")
	modeResponse(c, m)
}

// ToggleModeHandler flips between light and dark
func (s *Server) ToggleModeHandler(c *gin.Context) {
	next, err := s.modes.Toggle(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info().Str("mode", string(next)).Msg("color mode toggled")
	modeResponse(c, next)
}

// ResetModeHandler forgets the persisted mode so the fallback applies again
func (s *Server) ResetModeHandler(c *gin.Context) {
	if err := s.modes.Reset(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	s.GetModeHandler(c)
}
