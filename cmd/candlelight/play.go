package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/platform/tui"
	"github.com/vovakirdan/candlelight/internal/registry"
)

var (
	flagWorld  int
	flagLevel  int
	flagSlot   string
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode without the menu.

Controls:
  Arrows/WASD     - Move piece
  X/E             - Rotate piece
  Space/Enter     - Place piece
  Z/U/Backspace   - Undo placement
  P               - Pause
  R               - Restart level
  Esc             - Pause, then leave
  Q/Ctrl+C        - Quit

Free play games are saved to a slot (A-D) when --slot is given.

Examples:
  candlelight play tutorial
  candlelight play daily
  candlelight play puzzle --world 2 --level 4
  candlelight play freeplay --level 5 --seed 42
  candlelight play freeplay --slot B --resume`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWorld, "world", 1, "Puzzle world to start in")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	playCmd.Flags().StringVar(&flagSlot, "slot", "", "Free play save slot (A-D)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the game saved in --slot")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := args[0]

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'candlelight list' to see available modes.")
		os.Exit(1)
	}

	if flagSlot != "" && (mode != modes.FreePlayID || !modes.ValidSlot(flagSlot)) {
		fmt.Fprintf(os.Stderr, "Error: --slot takes A-D and only applies to %s\n", modes.FreePlayID)
		os.Exit(1)
	}
	if flagResume && flagSlot == "" {
		fmt.Fprintln(os.Stderr, "Error: --resume needs --slot")
		os.Exit(1)
	}

	env := newEnv()
	if mode == modes.PuzzleID && env.Catalog.Level(flagWorld, flagLevel) == nil {
		closeEnv(env)
		fmt.Fprintf(os.Stderr, "Error: no puzzle level %d-%d\n", flagWorld, flagLevel)
		os.Exit(1)
	}
	if mode == modes.PuzzleID && env.Store != nil {
		if p, err := env.Store.LoadProgress(); err == nil && !p.IsUnlocked(flagWorld, flagLevel) {
			closeEnv(env)
			fmt.Fprintf(os.Stderr, "Error: level %d-%d is locked\n", flagWorld, flagLevel)
			os.Exit(1)
		}
	}

	sel := tui.Selection{
		Mode:   mode,
		World:  flagWorld,
		Level:  flagLevel,
		Slot:   flagSlot,
		Resume: flagResume,
	}

	runErr := tui.Run(env, sel, runtimeConfig())

	// Close store before potential exit
	closeEnv(env)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
