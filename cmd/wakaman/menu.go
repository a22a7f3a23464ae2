package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wakaman/internal/games/wakaman"
	"github.com/vovakirdan/wakaman/internal/platform/tui"
	"github.com/vovakirdan/wakaman/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze from a menu",
	Long: `Start Waka Man in interactive menu mode.

Use arrow keys or j/k to choose a maze, Enter to play it.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Play maze
  Tab          - Scoreboard
  Q            - Quit

Examples:
  wakaman menu
  wakaman menu --fps 30
  wakaman menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	defer closeLog()
	if err != nil {
		return err
	}

	applyGameFlags()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(wakaman.GameID, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(wakaman.GameID, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(wakaman.GameID)
		if err != nil {
			return err
		}
		if g, ok := game.(*wakaman.Game); ok {
			g.SelectMaze(result.MazeID)
		}

		logger.Info("game started", "maze", result.MazeID)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
