package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.StrictNumericInput {
		t.Error("StrictNumericInput should default to false")
	}
	if s.ShowExitOption {
		t.Error("ShowExitOption should default to false")
	}
	if s.LogPath != "" || s.Verbose {
		t.Errorf("logging should be off by default, got %+v", s)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *s != *DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"show_exit_option": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !s.ShowExitOption {
		t.Error("ShowExitOption should be read from file")
	}
	if s.StrictNumericInput {
		t.Error("StrictNumericInput should keep its default")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"verbose": `), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed JSON")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	want := &Settings{
		StrictNumericInput: true,
		ShowExitOption:     true,
		LogPath:            "/tmp/magnet.log",
	}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestToLoggingConfig(t *testing.T) {
	s := &Settings{Verbose: true, LogPath: "x.log"}

	cfg := s.ToLoggingConfig()
	if !cfg.Verbose || cfg.Path != "x.log" {
		t.Errorf("ToLoggingConfig() = %+v", cfg)
	}
}

func TestToTUILoggingConfig(t *testing.T) {
	s := &Settings{Verbose: true, LogPath: "x.log"}

	cfg := s.ToTUILoggingConfig()
	if cfg.Verbose || cfg.Path != "x.log" {
		t.Errorf("ToTUILoggingConfig() = %+v, want file path only", cfg)
	}
}
