package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Journal settings
	LogFilePath string `json:"log_file_path"`

	// Sample export settings
	ExportPath    string   `json:"export_path"`
	ExportFormats []string `json:"export_formats"` // csv, tsv, json, matlab
	ExportHeader  bool     `json:"export_header"`

	// Waveform plot settings
	WaveformExport bool `json:"waveform_export"`
	WaveformWidth  int  `json:"waveform_width"`
	WaveformHeight int  `json:"waveform_height"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		LogFilePath: "calc_log.txt",

		ExportPath:    "exports",
		ExportFormats: []string{"csv"},
		ExportHeader:  true,

		WaveformExport: true,
		WaveformWidth:  800,
		WaveformHeight: 400,
	}
}

// Load reads settings from a JSON file. A missing file is not an
// error; defaults are returned instead.
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
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
