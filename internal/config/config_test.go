package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}
	if !strings.Contains(configDir, "sanad") {
		t.Errorf("GetConfigDir() = %v, should contain 'sanad'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("Version = %d, want 1", s.Version)
	}
	if s.Language != "en" {
		t.Errorf("Language = %q, want en", s.Language)
	}
	if s.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q, want gpt-3.5-turbo", s.Model)
	}
	if s.SimulatedDelay != 2*time.Second {
		t.Errorf("SimulatedDelay = %v, want 2s", s.SimulatedDelay)
	}
	if s.SubmitURL != "" {
		t.Errorf("SubmitURL = %q, want empty (simulated submission)", s.SubmitURL)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of missing file error = %v", err)
	}
	if s.Language != "en" || s.Model != "gpt-3.5-turbo" {
		t.Error("Load() of missing file should return defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s := NewSettings()
	s.Language = "ar"
	s.Model = "gpt-4o-mini"
	s.SubmitURL = "https://intake.example.com/applications"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Language != "ar" {
		t.Errorf("Language = %q, want ar", loaded.Language)
	}
	if loaded.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", loaded.Model)
	}
	if loaded.SubmitURL != s.SubmitURL {
		t.Errorf("SubmitURL = %q, want %q", loaded.SubmitURL, s.SubmitURL)
	}
}

func TestLoadNormalizesLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s := NewSettings()
	s.Language = "fr" // unsupported
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Language != "en" {
		t.Errorf("unsupported language normalized to %q, want en", loaded.Language)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s := NewSettings()
	s.Version = 9
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted an unsupported config version")
	}
}
