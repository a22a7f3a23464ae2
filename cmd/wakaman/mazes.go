package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wakaman/internal/core"
	"github.com/vovakirdan/wakaman/internal/tilemap"
)

var flagShowLayout bool

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List built-in mazes",
	Long: `Shows the built-in mazes with their size and pellet count.

Examples:
  wakaman mazes
  wakaman mazes --layout`,
	Args: cobra.NoArgs,
	RunE: runMazes,
}

func init() {
	mazesCmd.Flags().BoolVar(&flagShowLayout, "layout", false, "Print each maze layout")
}

func runMazes(_ *cobra.Command, _ []string) error {
	fmt.Printf("  %-10s  %-10s  %-7s  %s\n", "ID", "Name", "Size", "Pellets")
	fmt.Printf("  %-10s  %-10s  %-7s  %s\n", "--", "----", "----", "-------")

	for _, mz := range tilemap.Mazes() {
		m, err := tilemap.Parse(mz.Layout, 1, core.Vec2{})
		if err != nil {
			return fmt.Errorf("maze %s: %w", mz.ID, err)
		}
		size := fmt.Sprintf("%dx%d", m.Width, m.Height)
		fmt.Printf("  %-10s  %-10s  %-7s  %d\n", mz.ID, mz.Name, size, m.PelletsLeft())

		if flagShowLayout {
			fmt.Println()
			fmt.Println("    " + strings.Join(mz.Layout, "\n    "))
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'wakaman play --maze <id>' to play one.")
	return nil
}
