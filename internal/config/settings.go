package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/magnet-calculator/internal/io"
	"github.com/handiism/magnet-calculator/internal/logging"
)

// Settings holds all configuration options.
type Settings struct {
	// Input settings
	StrictNumericInput bool `json:"strict_numeric_input"`

	// Menu settings
	ShowExitOption bool `json:"show_exit_option"`

	// Logging settings
	LogPath string `json:"log_path"`
	Verbose bool   `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		StrictNumericInput: false,
		ShowExitOption:     false,
		LogPath:            "",
		Verbose:            false,
	}
}

// DefaultPath returns the per-user settings location,
// e.g. ~/.config/magnet-calculator/settings.json on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "settings.json"
	}
	return filepath.Join(dir, "magnet-calculator", "settings.json")
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return ioutils.WriteFile(path, data)
}

// ToLoggingConfig converts settings to logging.Config.
func (s *Settings) ToLoggingConfig() logging.Config {
	return logging.Config{
		Verbose: s.Verbose,
		Path:    s.LogPath,
	}
}

// ToTUILoggingConfig is ToLoggingConfig without stderr output, which
// would draw over the full-screen UI. Only LogPath is honored.
func (s *Settings) ToTUILoggingConfig() logging.Config {
	return logging.Config{Path: s.LogPath}
}
