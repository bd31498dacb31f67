// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Palette defaults
	v.SetDefault("palette.prefix", "color")
	v.SetDefault("palette.separator", "-")
	v.SetDefault("palette.dynamic", true)
	v.SetDefault("palette.format", "hex")
	v.SetDefault("palette.file", "")
	v.SetDefault("palette.preset", "default")

	// Output defaults (disabled until output.enabled is set)
	v.SetDefault("output.enabled", false)
	v.SetDefault("output.dir", "./src/theme")
	v.SetDefault("output.name", "palette")
	v.SetDefault("output.ext", "ts")
	v.SetDefault("output.type", "esm")
	v.SetDefault("output.s3_bucket", "")
	v.SetDefault("output.s3_prefix", "")

	// Build host plugins, consulted by "forewind build"
	v.SetDefault("build.plugins", []map[string]any{
		{"name": "@tailwindcss/forms", "options": map[string]any{"strategy": "class"}},
	})

	v.SetDefault("mode.fallback", "light")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(HomeDir(), "forewind.db"))

	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.behind_proxy", false)
	v.SetDefault("server.rate_limit", 10)
	v.SetDefault("server.cache_ttl", "30s")
	v.SetDefault("server.hsts", false)
	v.SetDefault("server.blocked_ips", []string{})
	v.SetDefault("server.api_allowed_ips", []string{})

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR")
	v.SetDefault("auth.jwt_expiry_hours", 8)

	// Backup defaults (0 disables the server's scheduler)
	v.SetDefault("backups.interval", "0s")
	v.SetDefault("backups.dir", "backups")

	v.SetDefault("log.level", "info")
}

// HomeDir is the directory holding the default config and database
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".forewind"
	}
	return filepath.Join(home, ".forewind")
}

// DefaultPath returns the config file path, honoring FOREWIND_CONFIG
func DefaultPath() string {
	if path := os.Getenv("FOREWIND_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(HomeDir(), "config.yaml")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as a string slice
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// UnmarshalKey decodes a nested config value into out
func UnmarshalKey(key string, out any) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}
	return v.UnmarshalKey(key, out)
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
