// Package config loads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 60 * time.Second
	defaultLevel   = "info"
)

type Config struct {
	BaseURL        string        // LOANBOARD_API_URL
	RequestTimeout time.Duration // LOANBOARD_TIMEOUT_SECONDS
	CachePath      string        // LOANBOARD_CACHE_PATH
	LogPath        string        // LOANBOARD_LOG_PATH
	LogLevel       string        // LOANBOARD_LOG_LEVEL
	DefaultOffice  string        // LOANBOARD_OFFICE
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first if present; its absence is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:        envOr("LOANBOARD_API_URL", defaultBaseURL),
		RequestTimeout: defaultTimeout,
		CachePath:      envOr("LOANBOARD_CACHE_PATH", defaultPath("cache.db")),
		LogPath:        envOr("LOANBOARD_LOG_PATH", defaultPath("loanboard.log")),
		LogLevel:       envOr("LOANBOARD_LOG_LEVEL", defaultLevel),
		DefaultOffice:  os.Getenv("LOANBOARD_OFFICE"),
	}

	if raw := os.Getenv("LOANBOARD_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("LOANBOARD_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("LOANBOARD_API_URL is not a valid URL: %q", c.BaseURL)
	}
	if c.CachePath == "" {
		return fmt.Errorf("cache path is empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultPath(file string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return file
	}
	return filepath.Join(home, ".config", "loanboard", file)
}
