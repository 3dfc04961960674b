// Package config provides application configuration read from the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Default configuration values.
const (
	DefaultLogLevel  = "WARN"
	DefaultLogFormat = "text"
	specDirName      = "marks"
)

// ErrMissingEditor is returned when no editor command is configured.
var ErrMissingEditor = errors.New("EDITOR is not set")

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Home is the user's home directory.
	// Env: HOME (required)
	Home string `envconfig:"HOME" required:"true"`

	// DataHome is the XDG data directory.
	// Env: XDG_DATA_HOME (default: $HOME/.local/share)
	DataHome string `envconfig:"XDG_DATA_HOME"`

	// MarksDir overrides the spec storage directory entirely.
	// Env: MARKS_DIR
	MarksDir string `envconfig:"MARKS_DIR"`

	// Editor is the command launched to edit a spec by hand.
	// Env: EDITOR
	Editor string `envconfig:"EDITOR"`

	// LogLevel is the log verbosity level.
	// Env: MARKS_LOG_LEVEL (default: WARN)
	LogLevel string `envconfig:"MARKS_LOG_LEVEL" default:"WARN"`

	// LogFormat is the log output format (text or json).
	// Env: MARKS_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"MARKS_LOG_FORMAT" default:"text"`
}

// LoadFromEnv loads configuration from environment variables. It uses no
// prefix so the conventional HOME, XDG_DATA_HOME and EDITOR names apply.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// SpecDir returns the flat directory holding one spec file per source path.
func (e EnvConfig) SpecDir() string {
	if e.MarksDir != "" {
		return e.MarksDir
	}

	dataHome := e.DataHome
	if dataHome == "" {
		dataHome = filepath.Join(e.Home, ".local", "share")
	}

	return filepath.Join(dataHome, specDirName)
}

// EditorCommand splits the configured editor into program and arguments,
// so values such as "code --wait" work.
func (e EnvConfig) EditorCommand() ([]string, error) {
	fields := strings.Fields(e.Editor)
	if len(fields) == 0 {
		return nil, ErrMissingEditor
	}

	return fields, nil
}

// Format returns the parsed log format.
func (e EnvConfig) Format() LogFormat {
	switch strings.ToLower(e.LogFormat) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatText
	}
}
