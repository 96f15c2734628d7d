package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores",
	Long: `Display your recent daily challenge results and your best puzzle scores.
Scores count alchemizations (placements), so lower is better.

Examples:
  candlelight scores
  candlelight scores --limit 30`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of daily results to show")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	daily, err := store.RecentDaily(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("Daily Challenge")
	fmt.Println()
	if len(daily) == 0 {
		fmt.Println("  No daily results yet.")
	} else {
		fmt.Printf("  %-10s  %-6s  %s\n", "Day", "Score", "Completed")
		fmt.Printf("  %-10s  %-6s  %s\n", "---", "-----", "---------")
		for _, e := range daily {
			fmt.Printf("  %-10s  %-6d  %s\n", e.DateKey, e.Score, e.CompletedAt.Format("2006-01-02 15:04"))
		}
	}
	fmt.Println()

	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
		return
	}

	catalog := loadCatalog(cfg)
	if catalog == nil {
		catalog = levels.MustDefault()
	}

	fmt.Println("Puzzles")
	fmt.Println()
	fmt.Printf("  Reached: %d-%d\n", progress.MaxWorld, progress.MaxLevel)
	solved, total := 0, 0
	for _, info := range catalog.Worlds() {
		for _, l := range catalog.World(info.Number).Levels {
			if b, ok := progress.Best(l.World, l.Number); ok {
				fmt.Printf("  %-6s  %d\n", fmt.Sprintf("%d-%d", l.World, l.Number), b)
				solved++
				total += b
			}
		}
	}
	if solved == 0 {
		fmt.Println("  No puzzles solved yet.")
		return
	}
	fmt.Printf("  Solved %d/%d, %d alchemizations in total\n", solved, catalog.TotalLevels(), total)
}
