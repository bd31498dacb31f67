// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/thatcatcamp/forewind/internal/mode"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"github.com/thatcatcamp/forewind/internal/vars"
)

var descriptionPolicy = bluemonday.UGCPolicy()

// PreviewHandler renders every scale of the palette as swatches. The page
// honors the persisted color mode.
func (s *Server) PreviewHandler(c *gin.Context) {
	r := resolved(c)

	css, err := s.paletteCSS(r.Palette)
	if err != nil {
		s.fail(c, err)
		return
	}
	expanded, err := palette.ExpandPalette(r.Palette, palette.FormatHex)
	if err != nil {
		s.fail(c, err)
		return
	}

	dark, err := s.modes.IsDark(c.Request.Context())
	if err != nil {
		// Preview still works without the stored mode
		s.logger.Warn().Err(err).Msg("could not read color mode")
	}
	rootClass := ""
	if dark {
		rootClass = mode.RootClass(mode.Dark)
	}

	description := ""
	if r.Source == "stored" {
		if record, err := store.GetPaletteByName(s.db, r.Name); err == nil {
			description = descriptionPolicy.Sanitize(record.Description)
		}
	}

	var content strings.Builder
	for _, name := range expanded.Names() {
		e, _ := expanded.Get(name)
		scale, ok := e.(*palette.ShadeMap)
		if !ok {
			continue
		}
		fmt.Fprintf(&content, "<h2>%s</h2>\n<div class=\"scale\">\n", html.EscapeString(name))
		for _, shade := range scale.Keys() {
			if shade == palette.Default {
				continue
			}
			value, _ := scale.Get(shade)
			key := vars.Key(s.opts.Prefix, name, shade, "-")
			fmt.Fprintf(&content, `	<div class="swatch">
		<div class="chip" style="background: rgb(var(--%s))"></div>
		<div class="label">%s <span class="value">%s</span></div>
	</div>
`, key, shade, html.EscapeString(value))
		}
		content.WriteString("</div>\n")
	}

	title := html.EscapeString(r.Name)
	page := fmt.Sprintf(`<!DOCTYPE html>
<html class="%s">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%s</title>
	<style>
%s
%s
	</style>
</head>
<body>
	<h1>%s</h1>
	<div class="description">%s</div>
%s
</body>
</html>
`, rootClass, title, css, previewStyles, title, description, content.String())

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
