package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds runtime settings for both the viewer and the batch converter.
type Config struct {
	LogoDir         string
	APIBase         string
	RefreshInterval string
	Surface         string
}

// LoadFromEnv reads configuration from environment variables with defaults.
func LoadFromEnv() *Config {
	return &Config{
		LogoDir:         getEnv("RINKSIDE_LOGO_DIR", "./logos"),
		APIBase:         getEnv("RINKSIDE_API_BASE", "https://api-web.nhle.com"),
		RefreshInterval: getEnv("RINKSIDE_REFRESH_INTERVAL", "30s"),
		Surface:         getEnv("RINKSIDE_SURFACE", "auto"),
	}
}

func (c *Config) Validate() error {
	if c.LogoDir == "" {
		return fmt.Errorf("logo_dir is required")
	}

	u, err := url.Parse(c.APIBase)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api_base: %q", c.APIBase)
	}

	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return fmt.Errorf("invalid refresh_interval: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}

	switch c.Surface {
	case "auto", "window", "alert":
	default:
		return fmt.Errorf("unknown surface %q (want auto, window or alert)", c.Surface)
	}

	return nil
}

// GetRefreshInterval returns the parsed auto-refresh cadence.
func (c *Config) GetRefreshInterval() time.Duration {
	d, _ := time.ParseDuration(c.RefreshInterval)
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
