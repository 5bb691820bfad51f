// Package config provides configuration management for magnet-calculator.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to logging.Config
//
// # Default Settings
//
// Use DefaultSettings() to get the defaults, which reproduce the
// classic calculator behavior:
//
//	settings := config.DefaultSettings()
//	// Lenient numeric input ("12abc" reads as 12)
//	// No exit entry in the menu
//	// No logging
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/settings.json")
//	if err != nil {
//	    // malformed file; a missing file yields defaults
//	}
//
// # Saving Settings
//
//	settings.ShowExitOption = true
//	err := settings.Save("/path/to/settings.json")
package config
