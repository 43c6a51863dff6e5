// Package config provides configuration management for the toolbox.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Journal in ./calc_log.txt
//	// Sample exports to ./exports as CSV with a header row
//	// Waveform PNG rendering at 800x400
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.ExportFormats = []string{"csv", "json"}
//	err := settings.Save("/path/to/config.json")
package config
