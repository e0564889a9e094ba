package notelite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiresSubcommand(t *testing.T) {
	_, _, err := Parse(nil)
	assert.Error(t, err)

	_, _, err = Parse([]string{"frobnicate"})
	assert.Error(t, err)
}

func TestParseCommands(t *testing.T) {
	cmd, _, err := Parse([]string{"migrate"})
	require.NoError(t, err)
	assert.IsType(t, &MigrateCommand{}, cmd)
	assert.Equal(t, "migrate", cmd.Name())

	cmd, _, err = Parse([]string{"run"})
	require.NoError(t, err)
	assert.IsType(t, &RunCommand{}, cmd)
	assert.Equal(t, "run", cmd.Name())
}

func TestParseDefaults(t *testing.T) {
	_, config, err := Parse([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "notes.db", config.DatabaseURL)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "8080", config.ServerPort)
	assert.False(t, config.ReadOnly)
}

func TestParseEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/notes")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9000")

	_, config, err := Parse([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/notes", config.DatabaseURL)
	assert.Equal(t, "staging", config.Environment)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "9000", config.ServerPort)
}

func TestParseFlagsWinOverEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")

	_, config, err := Parse([]string{"-port=9090", "-read-only", "run"})
	require.NoError(t, err)
	assert.Equal(t, "9090", config.ServerPort)
	assert.True(t, config.ReadOnly)
}
