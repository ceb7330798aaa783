// Package config loads draftmark settings from a TOML file.
//
// A missing file is not an error: every field has a default. Loaded values
// are validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid reports a configuration that failed validation.
var ErrInvalid = errors.New("invalid configuration")

const appName = "draftmark"

// Config holds the application settings.
type Config struct {
	StorageKey   string `toml:"storage_key"   validate:"required"`
	DBPath       string `toml:"db_path"       validate:"required"`
	LogLevel     string `toml:"log_level"     validate:"oneof=debug info warn error"`
	LogFormat    string `toml:"log_format"    validate:"oneof=text json"`
	LogFile      string `toml:"log_file"`
	HistoryLimit int    `toml:"history_limit" validate:"min=1,max=100000"`
	Title        string `toml:"title"`
	Autosave     bool   `toml:"autosave"`
}

// Default returns the built-in settings.
func Default() Config {
	dataDir := DataDir()
	return Config{
		StorageKey:   "draftEditorContent",
		DBPath:       filepath.Join(dataDir, "draftmark.db"),
		LogLevel:     "info",
		LogFormat:    "text",
		LogFile:      filepath.Join(dataDir, "draftmark.log"),
		HistoryLimit: 1000,
		Title:        "Draft Editor",
		Autosave:     true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/draftmark/config.toml, falling back to
// the user config directory.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "config.toml")
	}
	return filepath.Join(dir, appName, "config.toml")
}

// DataDir returns $XDG_DATA_HOME/draftmark, falling back to
// ~/.local/share/draftmark.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", appName)
}

// Load reads path over the defaults and validates the result. An empty path
// means DefaultPath. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Save writes c to path as TOML, creating parent directories.
func Save(path string, c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
