// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/forewind/internal/models"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func resolve(db *gorm.DB, name string, ttl time.Duration) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/palettes/"+name, nil)
	c.Params = gin.Params{{Key: "name", Value: name}}
	PaletteResolutionMiddleware(db, ttl)(c)
	return c, w
}

func TestPaletteResolutionPreset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ClearPaletteCache()
	db := setupTestDB(t)

	c, _ := resolve(db, "rose", time.Minute)
	val, exists := c.Get("palette")
	if !exists {
		t.Fatal("Palette not set in context")
	}
	resolved := val.(*Resolved)
	if resolved.Source != "preset" {
		t.Errorf("Expected preset source, got %s", resolved.Source)
	}
	if _, ok := resolved.Palette.Get("primary"); !ok {
		t.Error("preset palette should have a primary color")
	}
}

func TestPaletteResolutionStored(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ClearPaletteCache()
	db := setupTestDB(t)

	p := palette.FromStrings([]string{"primary"}, map[string]string{"primary": "#1680E4"})
	if _, err := store.CreatePalette(db, "campfire", "", p); err != nil {
		t.Fatalf("CreatePalette failed: %v", err)
	}

	c, _ := resolve(db, "campfire", time.Minute)
	val, exists := c.Get("palette")
	if !exists {
		t.Fatal("Palette not set in context")
	}
	if val.(*Resolved).Source != "stored" {
		t.Errorf("Expected stored source, got %s", val.(*Resolved).Source)
	}
}

func TestPaletteResolutionNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ClearPaletteCache()
	db := setupTestDB(t)

	c, w := resolve(db, "nowhere", time.Minute)
	if !c.IsAborted() {
		t.Error("Middleware should abort for an unknown palette")
	}
	if w.Code != 404 {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestPaletteResolutionCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ClearPaletteCache()
	db := setupTestDB(t)

	p := palette.FromStrings([]string{"primary"}, map[string]string{"primary": "#1680E4"})
	store.CreatePalette(db, "cached", "", p)
	resolve(db, "cached", time.Minute)

	// Deleting from the database leaves the cached copy until invalidated
	store.DeletePalette(db, "cached")
	if c, _ := resolve(db, "cached", time.Minute); c.IsAborted() {
		t.Error("Expected cache hit after delete")
	}

	InvalidatePalette("cached")
	if c, _ := resolve(db, "cached", time.Minute); !c.IsAborted() {
		t.Error("Expected 404 after invalidation")
	}
}
