// SPDX-License-Identifier: MIT
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/thatcatcamp/forewind/internal/models"
	"gorm.io/gorm"
)

// CreateToken records a newly issued API token
func CreateToken(db *gorm.DB, tokenID, name string, expiresAt time.Time) (*models.APIToken, error) {
	token := &models.APIToken{
		TokenID:   tokenID,
		Name:      name,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(token).Error; err != nil {
		return nil, fmt.Errorf("failed to record token: %w", err)
	}
	return token, nil
}

// GetToken retrieves a token by its jti
func GetToken(db *gorm.DB, tokenID string) (*models.APIToken, error) {
	var token models.APIToken
	result := db.Where("token_id = ?", tokenID).First(&token)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("token %s: %w", tokenID, ErrNotFound)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load token: %w", result.Error)
	}
	return &token, nil
}

// ListTokens returns all recorded tokens, newest first
func ListTokens(db *gorm.DB) ([]models.APIToken, error) {
	var tokens []models.APIToken
	if err := db.Order("created_at desc").Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// RevokeToken marks a token as revoked
func RevokeToken(db *gorm.DB, tokenID string) error {
	result := db.Model(&models.APIToken{}).Where("token_id = ?", tokenID).Update("revoked", true)
	if result.Error != nil {
		return fmt.Errorf("failed to revoke token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("token %s: %w", tokenID, ErrNotFound)
	}
	return nil
}
