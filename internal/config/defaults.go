package config

import (
	_ "embed"
)

//go:embed defaults/wakaman.yaml
var defaultWakamanYAML []byte

// DefaultWakamanConfig returns the default Waka Man configuration.
func DefaultWakamanConfig() WakamanConfig {
	return WakamanConfig{
		Movement: MovementConfig{
			MaxSpeed:     7,
			Deadzone:     0.01,
			ScanRadius:   0.48,
			CenterOffset: Point{X: 0.24, Y: 0.24},
			Controller:   ControllerGrid,
		},
		Grid: GridConfig{
			CellSize: 0.48,
		},
		Maze: MazeConfig{
			Name: "classic",
		},
		Scoring: ScoringConfig{
			PelletPoints: 10,
			PowerPoints:  50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultWakamanYAML returns the embedded default configuration file.
func DefaultWakamanYAML() []byte {
	return defaultWakamanYAML
}
