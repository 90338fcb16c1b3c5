package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"job": "job.txt",
		"template": "classic",
		"pages": "2",
		"density": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "job.txt", cfg.Job)
	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, "2", cfg.Pages)
	assert.Equal(t, 4, cfg.Density)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_DensityOutOfRange(t *testing.T) {
	cfg := &Config{Density: 6}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "density")
}

func TestValidate_BadPages(t *testing.T) {
	cfg := &Config{Pages: "4"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pages")
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: "/nonexistent/job.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestValidate_EmptyConfigOK(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := &Config{Template: "minimal"}
	defaults := Config{
		Template: "modern",
		Pages:    "2",
		Density:  4,
		Model:    "gemini-1.5-flash",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "minimal", merged.Template) // explicit value wins
	assert.Equal(t, "2", merged.Pages)
	assert.Equal(t, 4, merged.Density)
	assert.Equal(t, "gemini-1.5-flash", merged.Model)
}

func TestNewServerConfig_Defaults(t *testing.T) {
	for _, name := range []string{"PORT", "ENGINE_TIMEOUT_SECONDS", "MAX_CONCURRENT_RENDERS", "MAX_ADJUST_PASSES", "VERBOSE"} {
		t.Setenv(name, "")
	}

	cfg, err := NewServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60*time.Second, cfg.EngineTimeout)
	assert.Equal(t, 2, cfg.MaxConcurrent)
	assert.Equal(t, 1, cfg.MaxAdjustPasses)
	assert.False(t, cfg.Verbose)
}

func TestNewServerConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENGINE_TIMEOUT_SECONDS", "120")
	t.Setenv("MAX_CONCURRENT_RENDERS", "4")
	t.Setenv("MAX_ADJUST_PASSES", "2")
	t.Setenv("VERBOSE", "true")

	cfg, err := NewServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 120*time.Second, cfg.EngineTimeout)
	assert.Equal(t, 4, cfg.MaxConcurrent)
	assert.Equal(t, 2, cfg.MaxAdjustPasses)
	assert.True(t, cfg.Verbose)
}

func TestNewServerConfig_InvalidValues(t *testing.T) {
	t.Setenv("ENGINE_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := NewServerConfig()
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ENGINE_TIMEOUT_SECONDS")
}

func TestNewServerConfig_ZeroConcurrencyRejected(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_RENDERS", "0")

	cfg, err := NewServerConfig()
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_CONCURRENT_RENDERS")
}
