// candlelight is a terminal puzzle game about alchemizing gems: place
// pieces on a 13x13 board, toggle cells between dark and light, and match
// the target gem in as few placements as possible.
//
// Usage:
//
//	candlelight                  - Start the menu
//	candlelight list             - List game modes
//	candlelight play <mode>      - Play a mode directly
//	candlelight daily            - Show today's challenge
//	candlelight levels           - List puzzle levels and progress
//	candlelight scores           - Show best scores
//	candlelight serve            - Start SSH and WebSocket servers
//
// Global flags:
//
//	--seed <value>   - Set the queue seed for reproducible games
//	--db <path>      - Set database path (default: from config)
//	--config <path>  - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/candlelight/internal/modes"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "candlelight",
	Short: "Candlelight - alchemize gems in your terminal",
	Long: `Candlelight is a puzzle game played on a 13x13 board. Every piece you
place flips the cells under it between dark and light; shape the light into
the target gem using as few placements as you can.

Available commands:
  list     - Show all game modes
  play     - Play a specific mode directly
  menu     - Interactive menu (the default)
  daily    - Show today's challenge
  levels   - List puzzle levels and your progress
  scores   - View best scores
  serve    - Start SSH and WebSocket servers for remote play

Examples:
  candlelight
  candlelight play puzzle --world 1 --level 3
  candlelight play freeplay --slot A --resume
  candlelight serve --ssh :2222 --http :8080`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Queue RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
