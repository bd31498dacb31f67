package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestCreatePalette(t *testing.T) {
	db := setupTestDB(t)

	p := Palette{
		Name: "brand",
		Data: `{"primary":"#1680E4"}`,
	}

	result := db.Create(&p)
	if result.Error != nil {
		t.Fatalf("Failed to create palette: %v", result.Error)
	}

	if p.ID == 0 {
		t.Error("Palette ID should be set after creation")
	}

	var retrieved Palette
	if err := db.First(&retrieved, p.ID).Error; err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}
	if retrieved.Format != "hex" {
		t.Errorf("expected default format hex, got %s", retrieved.Format)
	}
}

func TestPaletteNameUnique(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Create(&Palette{Name: "brand", Data: "{}"}).Error; err != nil {
		t.Fatalf("Failed to create palette: %v", err)
	}
	if err := db.Create(&Palette{Name: "brand", Data: "{}"}).Error; err == nil {
		t.Error("Duplicate palette names should be rejected")
	}
}

func TestSettingKeyUnique(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Create(&Setting{Key: "__forewind_mode__", Value: "dark"}).Error; err != nil {
		t.Fatalf("Failed to create setting: %v", err)
	}
	if err := db.Create(&Setting{Key: "__forewind_mode__", Value: "light"}).Error; err == nil {
		t.Error("Duplicate setting keys should be rejected")
	}
}

func TestTableNames(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"palettes", "settings", "api_tokens"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s not created", table)
		}
	}
}
