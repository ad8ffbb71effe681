package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 1600 || cfg.Screen.Height != 800 {
		t.Errorf("screen = %dx%d, want 1600x800", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Game.BaseScale != 40 || cfg.Game.InitialLength != 4 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Derived.TickInterval != 100*time.Millisecond {
		t.Errorf("tick interval = %v, want 100ms", cfg.Derived.TickInterval)
	}
	if cfg.Derived.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v, want info", cfg.Derived.LogLevel)
	}

	want := []DifficultyConfig{{"easy", 0}, {"medium", 20}, {"hard", 30}}
	if len(cfg.Difficulties) != len(want) {
		t.Fatalf("difficulties = %+v", cfg.Difficulties)
	}
	for i := range want {
		if cfg.Difficulties[i] != want[i] {
			t.Errorf("difficulty %d = %+v, want %+v", i, cfg.Difficulties[i], want[i])
		}
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := writeConfig(t, `
game:
  tick_interval_ms: 80
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.TickInterval != 80*time.Millisecond {
		t.Errorf("tick interval = %v, want 80ms", cfg.Derived.TickInterval)
	}
	if cfg.Game.BaseScale != 40 {
		t.Errorf("base scale = %d, want default 40 kept", cfg.Game.BaseScale)
	}
	if cfg.Derived.LogLevel != slog.LevelDebug || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if len(cfg.Difficulties) != 3 {
		t.Errorf("difficulties = %d, want defaults kept", len(cfg.Difficulties))
	}
}

func TestLoadReplacesDifficulties(t *testing.T) {
	path := writeConfig(t, `
difficulties:
  - name: relaxed
    scale_reduction: 0
  - name: tiny
    scale_reduction: 35
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Difficulties) != 2 || cfg.Difficulties[1].Name != "tiny" {
		t.Errorf("difficulties = %+v", cfg.Difficulties)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "screen: {width: 0}"},
		{"negative scale", "game: {base_scale: -5}"},
		{"no initial length", "game: {initial_length: 0}"},
		{"zero tick", "game: {tick_interval_ms: 0}"},
		{"reduction eats the cell", "difficulties: [{name: silly, scale_reduction: 40}]"},
		{"negative reduction", "difficulties: [{name: big, scale_reduction: -10}]"},
		{"duplicate names", "difficulties: [{name: easy, scale_reduction: 0}, {name: Easy, scale_reduction: 10}]"},
		{"unnamed", "difficulties: [{scale_reduction: 0}]"},
		{"empty list", "difficulties: []"},
		{"no spawn area", "screen: {width: 300, height: 300}"},
		{"bad level", "logging: {level: loud}"},
		{"bad format", "logging: {format: xml}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want not-exist", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Game.TickIntervalMS = 120

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if loaded.Derived.TickInterval != 120*time.Millisecond {
		t.Errorf("tick interval = %v, want 120ms", loaded.Derived.TickInterval)
	}
}

func TestOverrideLogging(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.OverrideLogging("debug", ""); err != nil {
		t.Fatalf("OverrideLogging: %v", err)
	}
	if cfg.Derived.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", cfg.Derived.LogLevel)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("format = %q, want text kept", cfg.Logging.Format)
	}

	err = cfg.OverrideLogging("", "xml")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("OverrideLogging(xml) error = %v, want ErrInvalid", err)
	}
}
