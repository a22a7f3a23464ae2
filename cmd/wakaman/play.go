package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wakaman/internal/games/wakaman"
	"github.com/vovakirdan/wakaman/internal/platform/tui"
	"github.com/vovakirdan/wakaman/internal/registry"
	"github.com/vovakirdan/wakaman/internal/tilemap"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
	flagController string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Start playing Waka Man on the configured maze.

Controls:
  Arrows/WASD/hjkl - Steer (the last direction stays held)
  P/Space          - Pause
  R                - Restart (after clearing the maze)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow, speed grows with score
  normal - Start at 30% of the speed bonus
  hard   - Start at 70% of the speed bonus
  fixed  - No progression

Controllers:
  grid - Lane-following movement (default)
  free - Velocity stepper with wall contact correction

Examples:
  wakaman play
  wakaman play --maze box
  wakaman play --difficulty hard --controller free
  wakaman play --config ./my-wakaman.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Built-in maze ID (overrides config)")
}

// addGameFlags registers the flags that tune a game before it is created.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagController, "controller", "", "Movement controller: grid, free")
}

// applyGameFlags hands the flag values to the game package.
func applyGameFlags() {
	wakaman.SetConfigPath(flagConfig)
	wakaman.SetDifficultyPreset(flagDifficulty)
	wakaman.SetController(flagController)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagMaze != "" {
		if _, ok := tilemap.Lookup(flagMaze); !ok {
			return fmt.Errorf("unknown maze %q (run 'wakaman mazes' to list them)", flagMaze)
		}
	}

	logger, closeLog, err := fileLogger()
	defer closeLog()
	if err != nil {
		return err
	}

	applyGameFlags()
	wakaman.SetMaze(flagMaze)

	game, err := registry.Create(wakaman.GameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("play started", "maze", flagMaze, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
