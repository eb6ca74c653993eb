package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Export settings
	ExportPath           string `json:"export_path" yaml:"export_path"`
	ExportFormat         string `json:"export_format" yaml:"export_format"` // markdown, html, json
	MaxConcurrentExports int    `json:"max_concurrent_exports" yaml:"max_concurrent_exports"`
	SaveThumbnails       bool   `json:"save_thumbnails" yaml:"save_thumbnails"`
	ThumbnailMaxSize     int    `json:"thumbnail_max_size" yaml:"thumbnail_max_size"`

	// Generation settings
	GenerateDelayMillis int    `json:"generate_delay_ms" yaml:"generate_delay_ms"`
	PaletteSeed         uint64 `json:"palette_seed" yaml:"palette_seed"` // 0 picks colors at random

	// Logging
	LogFile  string `json:"log_file" yaml:"log_file"`
	LogLevel string `json:"log_level" yaml:"log_level"` // debug, info, warn, error
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		ExportPath:           filepath.Join(homeDir, "Storyboards"),
		ExportFormat:         "html",
		MaxConcurrentExports: 4,
		SaveThumbnails:       true,
		ThumbnailMaxSize:     320,

		GenerateDelayMillis: 1000,
		PaletteSeed:         0,

		LogFile:  "",
		LogLevel: "info",
	}
}

// GenerateDelay returns the simulated image generation latency.
func (s *Settings) GenerateDelay() time.Duration {
	return time.Duration(s.GenerateDelayMillis) * time.Millisecond
}

// Validate reports settings that cannot be used.
func (s *Settings) Validate() error {
	switch s.ExportFormat {
	case "markdown", "html", "json":
	default:
		return fmt.Errorf("unknown export format %q", s.ExportFormat)
	}
	if s.MaxConcurrentExports < 1 {
		return fmt.Errorf("max_concurrent_exports must be at least 1, got %d", s.MaxConcurrentExports)
	}
	if s.SaveThumbnails && s.ThumbnailMaxSize < 1 {
		return fmt.Errorf("thumbnail_max_size must be at least 1, got %d", s.ThumbnailMaxSize)
	}
	if s.GenerateDelayMillis < 0 {
		return fmt.Errorf("generate_delay_ms must not be negative, got %d", s.GenerateDelayMillis)
	}
	return nil
}

// Load reads settings from a JSON or YAML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
