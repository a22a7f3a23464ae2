package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wakaman/internal/games/wakaman"
	"github.com/vovakirdan/wakaman/internal/storage"
)

var (
	flagScoresMaze  string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the best runs, across all mazes or for one maze, followed by
per-maze statistics.

Examples:
  wakaman scores
  wakaman scores --maze box
  wakaman scores --limit 20
  wakaman scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMaze, "maze", "", "Only show runs on this maze")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(wakaman.GameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	runs, err := store.TopRuns(wakaman.GameID, flagScoresMaze, flagScoresLimit)
	if err != nil {
		return err
	}

	title := "all mazes"
	if flagScoresMaze != "" {
		title = flagScoresMaze
	}
	fmt.Printf("Best runs - Waka Man (%s)\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wakaman play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-7s  %-8s  %-8s  %s\n", "Rank", "Score", "Maze", "Pellets", "Time", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-7s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "----", "------", "----")
	for i, r := range runs {
		result := "-"
		if r.Won {
			result = "cleared"
		}
		fmt.Printf("  %-4d  %-8d  %-10s  %-7d  %-8s  %-8s  %s\n",
			i+1, r.Score, r.Maze, r.Pellets, runTime(r.Ticks), result,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.MazeStats(wakaman.GameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-5s  %-8s  %s\n", "Maze", "Runs", "Wins", "Best", "Average")
	for _, s := range stats {
		fmt.Printf("  %-10s  %-5d  %-5d  %-8d  %.0f\n", s.Maze, s.Runs, s.Wins, s.HighScore, s.AvgScore)
	}
	return nil
}

// runTime formats ticks as seconds at the current tick rate.
func runTime(ticks uint64) string {
	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(rate))
}
