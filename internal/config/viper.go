// Package config provides Viper-backed configuration lookup for the CLI.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/eventtix/eventtix/pkg/errors"
)

// Configuration keys. Each is also readable from the environment with the
// EVENTTIX_ prefix (EVENTTIX_BACKEND_URL and so on).
const (
	KeyBackendURL = "backend_url"
	KeyAPIKey     = "api_key"
	KeyStateDir   = "state_dir"
	KeyFeaturedID = "featured_event_id"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// BackendURL returns the configured backend project URL.
func BackendURL() (string, error) {
	url := GetString(KeyBackendURL)
	if url == "" {
		return "", errors.NewConfigError("backend",
			"backend URL not configured: set backend_url in the config file or EVENTTIX_BACKEND_URL", nil)
	}
	return url, nil
}

// APIKey returns the configured backend API key.
func APIKey() (string, error) {
	key := GetString(KeyAPIKey)
	if key == "" {
		return "", errors.NewConfigError("backend",
			"API key not configured: set api_key in the config file or EVENTTIX_API_KEY", nil)
	}
	return key, nil
}

// StateDir returns the configured local state directory, or empty for the
// default.
func StateDir() string {
	return GetString(KeyStateDir)
}

// FeaturedEventID returns the configured featured-event override, or zero
// for the default.
func FeaturedEventID() int64 {
	return viper.GetInt64(KeyFeaturedID)
}
