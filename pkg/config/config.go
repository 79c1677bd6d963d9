// Package config handles loading and saving sb configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/stickyboard/config.yaml
//   - Data:    ~/.local/share/stickyboard/ (ticket store)
//   - State:   ~/.local/state/stickyboard/ (debug log)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const appDir = "stickyboard"

// StoreConfig selects the ticket store.
type StoreConfig struct {
	Backend string `yaml:"backend,omitempty"` // json, sqlite or memory
	Path    string `yaml:"path,omitempty"`    // Store file; ignored by memory
}

// UIConfig holds UI preference settings.
type UIConfig struct {
	CardWidth int  `yaml:"card_width,omitempty"` // Ticket card width in cells (16-60)
	AltScreen bool `yaml:"alt_screen"`           // Run in the alternate screen buffer
}

// LogConfig controls the debug log.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"` // zerolog level name
}

// Config is the top-level configuration for sb.
type Config struct {
	Store StoreConfig `yaml:"store,omitempty"`
	UI    UIConfig    `yaml:"ui,omitempty"`
	Log   LogConfig   `yaml:"log,omitempty"`
}

// Card width bounds.
const (
	MinCardWidth     = 16
	MaxCardWidth     = 60
	DefaultCardWidth = 28
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: "json",
			Path:    defaultPath(DataDir(), "tickets.json"),
		},
		UI: UIConfig{
			CardWidth: DefaultCardWidth,
			AltScreen: true,
		},
		Log: LogConfig{
			File:  defaultPath(StateDir(), "sb.log"),
			Level: "info",
		},
	}
}

func defaultPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// ConfigDir returns the XDG config directory for sb.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDir)
}

// DataDir returns the XDG data directory for sb.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", appDir)
}

// StateDir returns the XDG state directory for sb.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", appDir)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
	cfg.UI.CardWidth = ClampCardWidth(cfg.UI.CardWidth)

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ClampCardWidth keeps w within the supported card widths. Zero means the
// default.
func ClampCardWidth(w int) int {
	switch {
	case w == 0:
		return DefaultCardWidth
	case w < MinCardWidth:
		return MinCardWidth
	case w > MaxCardWidth:
		return MaxCardWidth
	}
	return w
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
