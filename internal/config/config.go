// Package config loads and stores the sandoc configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/Hocdoc/sandoc/internal/doc"
)

// Config represents the sandoc configuration
type Config struct {
	// DefaultFrom and DefaultTo are the formats used when the CLI flags
	// are absent.
	DefaultFrom string `json:"default_from"`
	DefaultTo   string `json:"default_to"`

	// MessageFloor is the minimum diagnostic severity rendered into the
	// output ("debug", "info", "warning", "error", "fatal"). Empty
	// suppresses diagnostics entirely, leaving only fallback content.
	MessageFloor string `json:"message_floor,omitempty"`

	LogFile      string `json:"log_file"`
	PreviewWidth int    `json:"preview_width"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultFrom:  "rst",
		DefaultTo:    "docbook",
		MessageFloor: "",
		LogFile:      "/tmp/sandoc.log",
		PreviewWidth: 100,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "sandoc", "config.json")
	}
	return filepath.Join(home, ".config", "sandoc", "config.json")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.LogFile, err = expandPath(cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to expand log_file: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

var inputFormats = map[string]bool{
	"rst":      true,
	"markdown": true,
	"md":       true,
}

var outputFormats = map[string]bool{
	"docbook": true,
	"ast":     true,
}

var messageLevels = map[string]doc.MessageLevel{
	"debug":   doc.Debug,
	"info":    doc.Info,
	"warning": doc.Warning,
	"error":   doc.Error,
	"fatal":   doc.Fatal,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !inputFormats[c.DefaultFrom] {
		return fmt.Errorf("invalid default_from '%s': must be one of: rst, markdown, md", c.DefaultFrom)
	}
	if !outputFormats[c.DefaultTo] {
		return fmt.Errorf("invalid default_to '%s': must be one of: docbook, ast", c.DefaultTo)
	}
	if c.MessageFloor != "" {
		if _, ok := messageLevels[c.MessageFloor]; !ok {
			return fmt.Errorf("invalid message_floor '%s': must be one of: debug, info, warning, error, fatal", c.MessageFloor)
		}
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.PreviewWidth <= 0 {
		return fmt.Errorf("preview_width must be positive")
	}
	return nil
}

// Floor translates the configured message floor into a renderer
// severity. nil means diagnostics stay suppressed.
func (c *Config) Floor() *doc.MessageLevel {
	level, ok := messageLevels[c.MessageFloor]
	if !ok {
		return nil
	}
	return &level
}

// ParseLevel resolves a severity name from a CLI flag.
func ParseLevel(name string) (doc.MessageLevel, error) {
	level, ok := messageLevels[name]
	if !ok {
		return 0, fmt.Errorf("unknown severity '%s': must be one of: debug, info, warning, error, fatal", name)
	}
	return level, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
