package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candlelight/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Candlelight with the mode picker menu",
	Long: `Start Candlelight in interactive menu mode.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Best scores
  Esc          - Back
  Q            - Quit

Examples:
  candlelight menu
  candlelight menu --db ./candlelight.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	env := newEnv()
	err := tui.RunApp(env, runtimeConfig())
	closeEnv(env)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
