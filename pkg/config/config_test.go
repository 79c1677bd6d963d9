package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_STATE_HOME", "/state")
	cfg := DefaultConfig()

	if cfg.Store.Backend != "json" {
		t.Errorf("expected json backend, got %q", cfg.Store.Backend)
	}
	if want := filepath.Join("/data", "stickyboard", "tickets.json"); cfg.Store.Path != want {
		t.Errorf("expected store path %q, got %q", want, cfg.Store.Path)
	}
	if want := filepath.Join("/state", "stickyboard", "sb.log"); cfg.Log.File != want {
		t.Errorf("expected log file %q, got %q", want, cfg.Log.File)
	}
	if cfg.UI.CardWidth != DefaultCardWidth {
		t.Errorf("expected card width %d, got %d", DefaultCardWidth, cfg.UI.CardWidth)
	}
	if !cfg.UI.AltScreen {
		t.Error("expected alt screen on by default")
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Store.Backend != "json" {
		t.Errorf("expected default config, got backend %q", cfg.Store.Backend)
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
store:
  backend: sqlite
  path: ~/notes/board.db

ui:
  card_width: 40
  alt_screen: false

log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Store.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.Store.Backend)
	}
	// Path should have ~ expanded
	home, _ := os.UserHomeDir()
	expectedPath := filepath.Join(home, "notes/board.db")
	if cfg.Store.Path != expectedPath {
		t.Errorf("expected expanded path %q, got %q", expectedPath, cfg.Store.Path)
	}
	if cfg.UI.CardWidth != 40 {
		t.Errorf("expected card width 40, got %d", cfg.UI.CardWidth)
	}
	if cfg.UI.AltScreen {
		t.Error("expected alt screen off")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
	// Unset keys keep their defaults
	if cfg.Log.File == "" {
		t.Error("expected default log file to survive partial config")
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("store: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFrom_ClampsCardWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  card_width: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.CardWidth != MaxCardWidth {
		t.Errorf("expected card width clamped to %d, got %d", MaxCardWidth, cfg.UI.CardWidth)
	}
}

func TestClampCardWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultCardWidth},
		{3, MinCardWidth},
		{MinCardWidth, MinCardWidth},
		{33, 33},
		{MaxCardWidth + 1, MaxCardWidth},
	}
	for _, tt := range tests {
		if got := ClampCardWidth(tt.in); got != tt.want {
			t.Errorf("ClampCardWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Store.Backend = "memory"
	cfg.Store.Path = "/tmp/unused"
	cfg.UI.CardWidth = 20

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Store != cfg.Store {
		t.Errorf("store config: got %+v, want %+v", loaded.Store, cfg.Store)
	}
	if loaded.UI != cfg.UI {
		t.Errorf("ui config: got %+v, want %+v", loaded.UI, cfg.UI)
	}
}

func TestXDGDirs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	if got := ConfigDir(); got != "/custom/config/stickyboard" {
		t.Errorf("ConfigDir = %q", got)
	}
	if got := DataDir(); got != "/custom/data/stickyboard" {
		t.Errorf("DataDir = %q", got)
	}
	if got := StateDir(); got != "/custom/state/stickyboard" {
		t.Errorf("StateDir = %q", got)
	}
	if got := ConfigPath(); got != "/custom/config/stickyboard/config.yaml" {
		t.Errorf("ConfigPath = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x"); got != filepath.Join(home, "x") {
		t.Errorf("ExpandHome(~/x) = %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Errorf("absolute path changed: %q", got)
	}
}
