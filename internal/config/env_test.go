package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()

	for _, key := range []string{"XDG_DATA_HOME", "MARKS_DIR", "EDITOR", "MARKS_LOG_LEVEL", "MARKS_LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("HOME", "/home/reviewer")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/home/reviewer", cfg.Home)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, LogFormatText, cfg.Format())
	assert.Equal(t, filepath.Join("/home/reviewer", ".local", "share", "marks"), cfg.SpecDir())
}

func TestLoadFromEnv_MissingHome(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("HOME", "")
	require.NoError(t, os.Unsetenv("HOME"))

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOME")
}

func TestEnvConfig_SpecDir(t *testing.T) {
	t.Run("xdg data home", func(t *testing.T) {
		cfg := EnvConfig{Home: "/h", DataHome: "/data"}
		assert.Equal(t, filepath.Join("/data", "marks"), cfg.SpecDir())
	})

	t.Run("override wins", func(t *testing.T) {
		cfg := EnvConfig{Home: "/h", DataHome: "/data", MarksDir: "/custom"}
		assert.Equal(t, "/custom", cfg.SpecDir())
	})
}

func TestLoadFromEnv_OverrideValues(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("HOME", "/h")
	t.Setenv("MARKS_DIR", "/tmp/marks")
	t.Setenv("EDITOR", "code --wait")
	t.Setenv("MARKS_LOG_LEVEL", "debug")
	t.Setenv("MARKS_LOG_FORMAT", "JSON")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/marks", cfg.SpecDir())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.Format())

	editor, err := cfg.EditorCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait"}, editor)
}

func TestEnvConfig_EditorCommandMissing(t *testing.T) {
	_, err := EnvConfig{Editor: "   "}.EditorCommand()
	require.ErrorIs(t, err, ErrMissingEditor)
}
