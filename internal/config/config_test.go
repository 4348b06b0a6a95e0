package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Hocdoc/sandoc/internal/doc"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultFrom != "rst" {
		t.Errorf("Expected DefaultFrom to be rst, got %s", cfg.DefaultFrom)
	}
	if cfg.DefaultTo != "docbook" {
		t.Errorf("Expected DefaultTo to be docbook, got %s", cfg.DefaultTo)
	}
	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.PreviewWidth <= 0 {
		t.Error("Expected PreviewWidth to be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"markdown input", func(c *Config) { c.DefaultFrom = "markdown" }, false},
		{"unknown input format", func(c *Config) { c.DefaultFrom = "asciidoc" }, true},
		{"unknown output format", func(c *Config) { c.DefaultTo = "pdf" }, true},
		{"valid floor", func(c *Config) { c.MessageFloor = "warning" }, false},
		{"unknown floor", func(c *Config) { c.MessageFloor = "verbose" }, true},
		{"empty log file", func(c *Config) { c.LogFile = "" }, true},
		{"zero preview width", func(c *Config) { c.PreviewWidth = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFloor(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Floor() != nil {
		t.Error("empty floor must map to nil")
	}
	cfg.MessageFloor = "error"
	floor := cfg.Floor()
	if floor == nil || *floor != doc.Error {
		t.Errorf("floor = %v, want error", floor)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	testCfg := &Config{
		DefaultFrom:  "markdown",
		DefaultTo:    "ast",
		MessageFloor: "warning",
		LogFile:      "/tmp/sandoc-test.log",
		PreviewWidth: 80,
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.DefaultFrom != "markdown" || loadedCfg.DefaultTo != "ast" {
		t.Errorf("formats mismatch: got %s/%s", loadedCfg.DefaultFrom, loadedCfg.DefaultTo)
	}
	if loadedCfg.MessageFloor != "warning" {
		t.Errorf("MessageFloor = %q, want warning", loadedCfg.MessageFloor)
	}
	if loadedCfg.PreviewWidth != 80 {
		t.Errorf("PreviewWidth = %d, want 80", loadedCfg.PreviewWidth)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "nonexistent.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.DefaultFrom != "rst" {
		t.Errorf("Expected default input rst, got %s", cfg.DefaultFrom)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"tilde expansion", "~/test", homeDir},
		{"tilde only", "~", homeDir},
		{"absolute path", "/tmp/test", "/tmp/test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
		})
	}
}
