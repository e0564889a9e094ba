package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "notes.db", settings.DatabaseURL)
	assert.Equal(t, "development", settings.Environment)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, "8080", settings.Port)
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"database_url: sqlite:///var/lib/notelite/notes.db\nenvironment: production\n"), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///var/lib/notelite/notes.db", settings.DatabaseURL)
	assert.Equal(t, "production", settings.Environment)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "8080", settings.Port)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestEnvironmentWinsOverDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/notes")
	t.Setenv("PORT", "9000")

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/notes", settings.DatabaseURL)
	assert.Equal(t, "9000", settings.Port)
	// Untouched keys keep their defaults.
	assert.Equal(t, "development", settings.Environment)
}

func TestEmptyEnvironmentVariableIgnored(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nport: \"9000\"\n"), 0644))

	t.Setenv("LOG_LEVEL", "debug")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "9000", settings.Port)
}
