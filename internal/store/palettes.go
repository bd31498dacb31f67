// SPDX-License-Identifier: MIT
package store

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/thatcatcamp/forewind/internal/models"
	"github.com/thatcatcamp/forewind/internal/palette"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// ErrExists is returned when a palette name is taken
var ErrExists = errors.New("already exists")

// ErrInvalidName is returned for palette or color names that cannot be used
// in a URL or a CSS custom property
var ErrInvalidName = errors.New("invalid name")

var (
	namePattern      = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)
	colorNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// ValidateName checks that a palette name is a lowercase slug
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: palette %q: use lowercase letters, digits, - and _", ErrInvalidName, name)
	}
	return nil
}

func encode(p *palette.Palette) (string, error) {
	// Color names end up inside generated CSS
	for _, name := range p.Names() {
		if !colorNamePattern.MatchString(name) {
			return "", fmt.Errorf("%w: color %q", ErrInvalidName, name)
		}
	}
	// Expanding up front rejects bad colors before anything is saved
	if _, err := palette.ExpandPalette(p, palette.FormatHex); err != nil {
		return "", err
	}
	data, err := p.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to encode palette: %w", err)
	}
	return string(data), nil
}

// CreatePalette saves a new named palette
func CreatePalette(db *gorm.DB, name, description string, p *palette.Palette) (*models.Palette, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	// Check if name already exists (including soft-deleted palettes)
	var existing models.Palette
	result := db.Unscoped().Where("name = ?", name).First(&existing)
	if result.Error == nil {
		if !existing.DeletedAt.Valid {
			return nil, fmt.Errorf("palette %s: %w", name, ErrExists)
		}
		// Name belongs to a deleted palette - purge it so it can be reused
		if err := db.Unscoped().Delete(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to reuse palette name: %w", err)
		}
	}

	data, err := encode(p)
	if err != nil {
		return nil, err
	}

	record := &models.Palette{
		Name:        name,
		Description: description,
		Data:        data,
	}
	if err := db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create palette: %w", err)
	}
	return record, nil
}

// UpdatePalette replaces the colors of a saved palette
func UpdatePalette(db *gorm.DB, name string, p *palette.Palette) (*models.Palette, error) {
	record, err := GetPaletteByName(db, name)
	if err != nil {
		return nil, err
	}
	data, err := encode(p)
	if err != nil {
		return nil, err
	}
	record.Data = data
	if err := db.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update palette: %w", err)
	}
	return record, nil
}

// GetPaletteByName retrieves a saved palette
func GetPaletteByName(db *gorm.DB, name string) (*models.Palette, error) {
	var record models.Palette
	result := db.Where("name = ?", name).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("palette %s: %w", name, ErrNotFound)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load palette: %w", result.Error)
	}
	return &record, nil
}

// LoadPalette retrieves and decodes a saved palette
func LoadPalette(db *gorm.DB, name string) (*palette.Palette, error) {
	record, err := GetPaletteByName(db, name)
	if err != nil {
		return nil, err
	}
	return Decode(record)
}

// Decode parses the stored palette document
func Decode(record *models.Palette) (*palette.Palette, error) {
	p, err := palette.Parse([]byte(record.Data))
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", record.Name, err)
	}
	return p, nil
}

// ListPalettes returns all saved palettes ordered by name
func ListPalettes(db *gorm.DB) ([]models.Palette, error) {
	var records []models.Palette
	result := db.Order("name").Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", result.Error)
	}
	return records, nil
}

// DeletePalette soft-deletes a palette
func DeletePalette(db *gorm.DB, name string) error {
	result := db.Where("name = ?", name).Delete(&models.Palette{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete palette: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("palette %s: %w", name, ErrNotFound)
	}
	return nil
}
