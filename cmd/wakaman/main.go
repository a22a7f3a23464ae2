// wakaman plays Waka Man, a pellet-eating maze game, in the terminal.
//
// Usage:
//
//	wakaman play             - Play a maze directly
//	wakaman menu             - Pick a maze interactively
//	wakaman list             - List registered games
//	wakaman mazes            - List built-in mazes
//	wakaman scores           - Show best runs
//	wakaman serve            - Start SSH server for remote play
//	wakaman config           - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.arcade/wakaman.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination during play (default: ~/.arcade/wakaman.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wakaman/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wakaman",
	Short: "Waka Man - eat every pellet in the maze",
	Long: `Waka Man is a terminal maze game. Steer through the lanes, turn at
junctions and clear the board of pellets.

Available commands:
  play     - Play a maze directly
  menu     - Interactive maze picker
  list     - Show registered games
  mazes    - Show built-in mazes
  scores   - View best runs
  serve    - Start SSH server for remote play
  config   - Print the default config file

Examples:
  wakaman play
  wakaman play --maze box --difficulty hard
  wakaman menu
  wakaman serve --ssh :2222
  wakaman scores --maze classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while a game is on screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
