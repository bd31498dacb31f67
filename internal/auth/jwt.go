// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/forewind/internal/config"
	"github.com/thatcatcamp/forewind/internal/store"
	"gorm.io/gorm"
)

// Claims represents JWT claims for API access
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// getJWTSecret returns the JWT secret from env var or config
func getJWTSecret() string {
	// Environment variable takes precedence
	if secret := os.Getenv("FOREWIND_JWT_SECRET"); secret != "" {
		return secret
	}
	return config.GetString("auth.jwt_secret")
}

func expiry() time.Duration {
	expiryHours := config.GetInt("auth.jwt_expiry_hours")
	if expiryHours == 0 {
		expiryHours = 8 // Default fallback
	}
	return time.Duration(expiryHours) * time.Hour
}

// GenerateToken signs a token for name. The jti is returned alongside so the
// caller can record it for revocation.
func GenerateToken(name string) (string, *Claims, error) {
	tokenID, err := GenerateTokenID()
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	claims := &Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(getJWTSecret()))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// IssueToken signs a token and records it so it can be listed and revoked
func IssueToken(db *gorm.DB, name string) (string, error) {
	signed, claims, err := GenerateToken(name)
	if err != nil {
		return "", err
	}
	if _, err := store.CreateToken(db, claims.ID, name, claims.ExpiresAt.Time); err != nil {
		return "", err
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getJWTSecret()), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.ID == "" {
		return nil, errors.New("token has no id")
	}

	return claims, nil
}
