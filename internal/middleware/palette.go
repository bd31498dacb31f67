// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"github.com/thatcatcamp/forewind/internal/themes"
	"gorm.io/gorm"
)

// Resolved is a palette looked up by name, either a preset or a stored one
type Resolved struct {
	Name    string
	Source  string // "preset" or "stored"
	Palette *palette.Palette
}

// CacheEntry represents a cached palette with expiration
type CacheEntry struct {
	Resolved  *Resolved
	ExpiresAt time.Time
}

var paletteCache sync.Map

// Resolve finds a palette by name. Presets shadow stored palettes.
func Resolve(db *gorm.DB, name string) (*Resolved, error) {
	if preset := themes.GetPreset(name); preset != nil {
		return &Resolved{Name: preset.Name, Source: "preset", Palette: preset.Palette()}, nil
	}
	p, err := store.LoadPalette(db, name)
	if err != nil {
		return nil, err
	}
	return &Resolved{Name: name, Source: "stored", Palette: p}, nil
}

// PaletteResolutionMiddleware resolves the :name route parameter into a
// palette and stores it in the context under "palette"
func PaletteResolutionMiddleware(db *gorm.DB, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		// Check cache first
		if entry, ok := paletteCache.Load(name); ok {
			cacheEntry := entry.(CacheEntry)
			if time.Now().Before(cacheEntry.ExpiresAt) {
				// Cache hit and not expired
				c.Set("palette", cacheEntry.Resolved)
				c.Next()
				return
			}
			// Cache expired, remove it
			paletteCache.Delete(name)
		}

		// Cache miss - query presets and database
		resolved, err := Resolve(db, name)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "palette not found"})
			return
		}

		if ttl > 0 {
			paletteCache.Store(name, CacheEntry{
				Resolved:  resolved,
				ExpiresAt: time.Now().Add(ttl),
			})
		}

		c.Set("palette", resolved)
		c.Next()
	}
}

// InvalidatePalette drops a cached palette after it is saved or deleted
func InvalidatePalette(name string) {
	paletteCache.Delete(name)
}

// ClearPaletteCache clears the entire palette cache (useful for testing)
func ClearPaletteCache() {
	paletteCache = sync.Map{}
}
