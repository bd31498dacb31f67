// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/thatcatcamp/forewind/internal/mode"
	"github.com/thatcatcamp/forewind/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingStore keeps key-value settings in the settings table. It backs the
// color mode toggler.
type SettingStore struct {
	DB *gorm.DB
}

// Get returns mode.ErrNotFound for missing keys
func (s SettingStore) Get(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	result := s.DB.WithContext(ctx).Where(&models.Setting{Key: key}).First(&setting)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", mode.ErrNotFound
	}
	if result.Error != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, result.Error)
	}
	return setting.Value, nil
}

// Set inserts or updates a setting
func (s SettingStore) Set(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	result := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting)
	if result.Error != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, result.Error)
	}
	return nil
}

// Delete removes a setting
func (s SettingStore) Delete(ctx context.Context, key string) error {
	result := s.DB.WithContext(ctx).Where(&models.Setting{Key: key}).Delete(&models.Setting{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return mode.ErrNotFound
	}
	return nil
}
