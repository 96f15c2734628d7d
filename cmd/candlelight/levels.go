package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candlelight/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List puzzle levels and your progress",
	Long: `List every world and level of the puzzle campaign with its target size,
whether it is unlocked, and your best score.

A custom campaign can be loaded by setting puzzle.levels_dir in the config.

Examples:
  candlelight levels
  candlelight levels --config ./my-campaign.yaml`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	if catalog == nil {
		catalog = levels.MustDefault()
	}

	progress := levels.NewProgress()
	tracked := false
	if store := openStore(cfg); store != nil {
		if p, err := store.LoadProgress(); err == nil {
			progress = p
			tracked = true
		}
		store.Close()
	}

	for _, info := range catalog.Worlds() {
		fmt.Printf("World %d - %s\n", info.Number, info.Name)
		fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "Level", "Gem", "Pieces", "Best")
		fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "-----", "---", "------", "----")

		for _, l := range catalog.World(info.Number).Levels {
			best := "-"
			if b, ok := progress.Best(l.World, l.Number); ok {
				best = fmt.Sprintf("%d", b)
			} else if tracked && !progress.IsUnlocked(l.World, l.Number) {
				best = "locked"
			}
			fmt.Printf("  %-6s  %-6d  %-6d  %s\n",
				fmt.Sprintf("%d-%d", l.World, l.Number), len(l.Target), len(l.Queue), best)
		}
		fmt.Println()
	}

	fmt.Printf("%d levels. Run 'candlelight play puzzle --world W --level L' to play one.\n",
		catalog.TotalLevels())
}
