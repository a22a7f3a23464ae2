package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultWakamanYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultWakamanConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultWakamanConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
movement:
  max_speed: 4.5
  controller: free
maze:
  name: box
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Movement.MaxSpeed != 4.5 {
		t.Errorf("MaxSpeed = %v, want 4.5", cfg.Movement.MaxSpeed)
	}
	if cfg.Movement.Controller != ControllerFree {
		t.Errorf("Controller = %q, want %q", cfg.Movement.Controller, ControllerFree)
	}
	if cfg.Maze.Name != "box" {
		t.Errorf("Maze = %q, want box", cfg.Maze.Name)
	}
	// Untouched keys keep their defaults
	if cfg.Movement.Deadzone != 0.01 || cfg.Grid.CellSize != 0.48 {
		t.Errorf("defaults lost: deadzone=%v cell=%v", cfg.Movement.Deadzone, cfg.Grid.CellSize)
	}
	if cfg.Movement.CenterOffset != (Point{X: 0.24, Y: 0.24}) {
		t.Errorf("CenterOffset = %+v", cfg.Movement.CenterOffset)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *WakamanConfig)
		wantErr string
	}{
		{"defaults", func(c *WakamanConfig) {}, ""},
		{"zero speed", func(c *WakamanConfig) { c.Movement.MaxSpeed = 0 }, "max_speed"},
		{"negative deadzone", func(c *WakamanConfig) { c.Movement.Deadzone = -1 }, "deadzone"},
		{"zero radius", func(c *WakamanConfig) { c.Movement.ScanRadius = 0 }, "scan_radius"},
		{"zero cell", func(c *WakamanConfig) { c.Grid.CellSize = 0 }, "cell_size"},
		{"no maze", func(c *WakamanConfig) { c.Maze.Name = "" }, "maze.name"},
		{"bad controller", func(c *WakamanConfig) { c.Movement.Controller = "physics" }, "controller"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWakamanConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadWakamanCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wakaman.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  pellet_points: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWakaman(path)
	if err != nil {
		t.Fatalf("LoadWakaman() failed: %v", err)
	}
	if cfg.Scoring.PelletPoints != 25 {
		t.Errorf("PelletPoints = %d, want 25", cfg.Scoring.PelletPoints)
	}
}

func TestLoadWakamanCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadWakaman(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("movement: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWakaman(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  cell_size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWakaman(invalid); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name        string
		preset      string
		wantEnabled bool
		wantLevel   float64
	}{
		{"none keeps config", "", true, 0.0},
		{"easy", "easy", true, 0.0},
		{"normal", "normal", true, 0.3},
		{"hard", "hard", true, 0.7},
		{"fixed", "fixed", false, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePreset(tc.preset)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tc.preset, err)
			}
			cfg := DefaultWakamanConfig()
			ApplyWakamanPreset(&cfg, p)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 7},
		{500, 8.75},
		{1000, 10.5},
		{5000, 10.5}, // clamped at max level
	}
	for _, tc := range tests {
		if got := dm.Speed(7, tc.score, 0); got != tc.want {
			t.Errorf("Speed(7, %d) = %v, want %v", tc.score, got, tc.want)
		}
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 2})
	if got := fixed.Level(1000, 1000); got != 1 {
		t.Errorf("disabled Level = %v, want clamped initial level 1", got)
	}
}
