// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import (
	"errors"
	"fmt"
)

// Controller names accepted by MovementConfig.Controller.
const (
	ControllerGrid = "grid"
	ControllerFree = "free"
)

// WakamanConfig contains all configuration for the Waka Man game.
type WakamanConfig struct {
	Movement   MovementConfig   `yaml:"movement"`
	Grid       GridConfig       `yaml:"grid"`
	Maze       MazeConfig       `yaml:"maze"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MovementConfig defines how the player moves through the maze.
type MovementConfig struct {
	MaxSpeed     float64 `yaml:"max_speed"`     // World units per second
	Deadzone     float64 `yaml:"deadzone"`      // Axis values at or below this are ignored
	ScanRadius   float64 `yaml:"scan_radius"`   // Wall probe distance from the player
	CenterOffset Point   `yaml:"center_offset"` // Cell origin to lane center
	Controller   string  `yaml:"controller"`    // "grid" or "free"
}

// Point is a 2D value in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GridConfig places the tile map in world space.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
	Origin   Point   `yaml:"origin"`
}

// MazeConfig selects a built-in maze.
type MazeConfig struct {
	Name string `yaml:"name"`
}

// ScoringConfig defines points per pickup.
type ScoringConfig struct {
	PelletPoints int `yaml:"pellet_points"`
	PowerPoints  int `yaml:"power_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate reports the first invalid setting.
func (c WakamanConfig) Validate() error {
	switch {
	case c.Movement.MaxSpeed <= 0:
		return fmt.Errorf("config: movement.max_speed must be positive, got %v", c.Movement.MaxSpeed)
	case c.Movement.Deadzone < 0 || c.Movement.Deadzone >= 1:
		return fmt.Errorf("config: movement.deadzone must be in [0, 1), got %v", c.Movement.Deadzone)
	case c.Movement.ScanRadius <= 0:
		return fmt.Errorf("config: movement.scan_radius must be positive, got %v", c.Movement.ScanRadius)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("config: grid.cell_size must be positive, got %v", c.Grid.CellSize)
	case c.Maze.Name == "":
		return errors.New("config: maze.name is required")
	}

	switch c.Movement.Controller {
	case ControllerGrid, ControllerFree:
	default:
		return fmt.Errorf("config: unknown movement.controller %q", c.Movement.Controller)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
