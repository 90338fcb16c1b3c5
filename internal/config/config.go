// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job     string `json:"job,omitempty"`     // Path to job description text file
	Profile string `json:"profile,omitempty"` // Path to user profile JSON
	Output  string `json:"output,omitempty"`  // Path to write the generated PDF

	// Rendering
	Template string `json:"template,omitempty"` // Template name (modern, classic, minimal, compact)
	Pages    string `json:"pages,omitempty"`    // Target page count ("1", "2", "3")
	Density  int    `json:"density,omitempty"`  // Layout density (1-5)

	// Behavior
	APIKey          string `json:"api_key,omitempty"`           // Gemini API key
	Model           string `json:"model,omitempty"`             // Gemini model name
	ChromePath      string `json:"chrome_path,omitempty"`       // Path to the Chrome/Chromium binary
	MaxAdjustPasses int    `json:"max_adjust_passes,omitempty"` // Density adjustment passes after the first render
	Verbose         bool   `json:"verbose,omitempty"`           // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Density < 0 || c.Density > 5 {
		return fmt.Errorf("config error: 'density' must be between 1 and 5")
	}
	if c.Pages != "" && c.Pages != "1" && c.Pages != "2" && c.Pages != "3" {
		return fmt.Errorf("config error: 'pages' must be \"1\", \"2\", or \"3\"")
	}
	if c.MaxAdjustPasses < 0 {
		return fmt.Errorf("config error: 'max_adjust_passes' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Pages == "" {
		result.Pages = defaults.Pages
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Int fields: use default if zero
	if result.Density == 0 {
		result.Density = defaults.Density
	}
	if result.MaxAdjustPasses == 0 {
		result.MaxAdjustPasses = defaults.MaxAdjustPasses
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
