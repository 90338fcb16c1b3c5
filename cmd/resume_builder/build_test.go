package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidchen/resume-builder/internal/types"
)

func TestLoadProfile_Valid(t *testing.T) {
	content := `{
		"fullName": "Jane Doe",
		"email": "jane@example.com",
		"skills": ["Go", "Postgres"]
	}`
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	profile, err := loadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, types.StringList{"Go", "Postgres"}, profile.Skills)
}

func TestLoadProfile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad"), 0644))

	profile, err := loadProfile(path)
	assert.Nil(t, profile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profile JSON")
}

func TestLoadProfile_Missing(t *testing.T) {
	profile, err := loadProfile("/nonexistent/profile.json")
	assert.Nil(t, profile)
	assert.Error(t, err)
}

func TestLoadAIContent_ScalarCoercion(t *testing.T) {
	// skills as a bare string still decodes
	content := `{"summary": "Hi", "skills": "Go"}`
	path := filepath.Join(t.TempDir(), "ai.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ai, err := loadAIContent(path)
	require.NoError(t, err)

	assert.Equal(t, "Hi", ai.Summary)
	assert.Equal(t, types.StringList{"Go"}, ai.Skills)
}
