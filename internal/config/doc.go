// Package config provides configuration management for storyboard-creator.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Validation of user supplied values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Exports to ~/Storyboards as HTML with thumbnails
//	// One second of simulated generation latency
//
// # Loading from File
//
// The file format follows the extension: .yaml and .yml are read as YAML,
// everything else as JSON.
//
//	settings, err := config.Load("/path/to/storyboard.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.ExportFormat = "markdown"
//	err := settings.Save("/path/to/storyboard.json")
package config
