// Package config provides server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Port            string
	APIKey          string
	Model           string
	ChromePath      string
	EngineTimeout   time.Duration
	MaxConcurrent   int
	MaxAdjustPasses int
	Verbose         bool
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 8080), GEMINI_API_KEY, GEMINI_MODEL, CHROME_PATH,
// ENGINE_TIMEOUT_SECONDS (default: 60), MAX_CONCURRENT_RENDERS (default: 2),
// MAX_ADJUST_PASSES (default: 1), and VERBOSE.
func NewServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	timeoutSecs, err := envInt("ENGINE_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	maxConcurrent, err := envInt("MAX_CONCURRENT_RENDERS", 2)
	if err != nil {
		return nil, err
	}
	maxPasses, err := envInt("MAX_ADJUST_PASSES", 1)
	if err != nil {
		return nil, err
	}

	config := &ServerConfig{
		Port:            port,
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		Model:           os.Getenv("GEMINI_MODEL"),
		ChromePath:      os.Getenv("CHROME_PATH"),
		EngineTimeout:   time.Duration(timeoutSecs) * time.Second,
		MaxConcurrent:   maxConcurrent,
		MaxAdjustPasses: maxPasses,
		Verbose:         os.Getenv("VERBOSE") == "true",
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.EngineTimeout < time.Second {
		return fmt.Errorf("ENGINE_TIMEOUT_SECONDS must be at least 1 second, got: %s", c.EngineTimeout)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("MAX_CONCURRENT_RENDERS must be at least 1, got: %d", c.MaxConcurrent)
	}
	if c.MaxAdjustPasses < 0 {
		return fmt.Errorf("MAX_ADJUST_PASSES must be non-negative, got: %d", c.MaxAdjustPasses)
	}
	return nil
}

func envInt(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return value, nil
}
