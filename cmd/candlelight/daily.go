package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candlelight/internal/gem"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/platform/tui"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show today's challenge",
	Long: `Show today's daily challenge target and your best result for it.

Every player gets the same target and the same pieces on the same day.

Examples:
  candlelight daily
  candlelight play daily`,
	Run: runDaily,
}

func runDaily(_ *cobra.Command, _ []string) {
	daily := modes.NewDaily(nil)
	key := daily.TodayKey()
	target := gem.GenerateDaily(daily.TodaySeed())

	fmt.Printf("Daily Challenge - %s\n", key)
	fmt.Println()
	fmt.Println(tui.RenderTarget(target))
	fmt.Printf("Gem size: %d\n", len(target))

	cfg := loadConfig()
	store := openStore(cfg)
	if store == nil {
		return
	}
	defer store.Close()

	best, err := store.DailyBest(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving score: %v\n", err)
		return
	}
	if best == nil {
		fmt.Println("Not solved yet. Run 'candlelight play daily' to try it.")
		return
	}
	fmt.Printf("Best: %d alchemizations\n", *best)
}
