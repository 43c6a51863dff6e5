package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.LogFilePath != "calc_log.txt" {
		t.Errorf("LogFilePath = %q, want calc_log.txt", s.LogFilePath)
	}
	if len(s.ExportFormats) == 0 {
		t.Error("ExportFormats should not be empty by default")
	}
	if s.WaveformWidth <= 0 || s.WaveformHeight <= 0 {
		t.Errorf("waveform size %dx%d should be positive", s.WaveformWidth, s.WaveformHeight)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if s.LogFilePath != DefaultSettings().LogFilePath {
		t.Errorf("missing file should yield defaults, got LogFilePath=%q", s.LogFilePath)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "settings.json")

	s := DefaultSettings()
	s.LogFilePath = "/tmp/other_log.txt"
	s.ExportFormats = []string{"csv", "json", "matlab"}
	s.WaveformExport = false

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.LogFilePath != s.LogFilePath {
		t.Errorf("LogFilePath = %q, want %q", loaded.LogFilePath, s.LogFilePath)
	}
	if len(loaded.ExportFormats) != 3 || loaded.ExportFormats[2] != "matlab" {
		t.Errorf("ExportFormats = %v, want %v", loaded.ExportFormats, s.ExportFormats)
	}
	if loaded.WaveformExport {
		t.Error("WaveformExport should have round-tripped as false")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid JSON")
	}
}
