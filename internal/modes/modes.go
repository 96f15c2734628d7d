// Package modes provides the four game mode policies and registers them
// with the registry.
package modes

import (
	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/registry"
)

// Mode ids.
const (
	DailyID    = "daily"
	PuzzleID   = "puzzle"
	FreePlayID = "freeplay"
	TutorialID = "tutorial"
)

func init() {
	registry.Register(DailyID, func() registry.Policy {
		return NewDaily(nil)
	})
	registry.Register(PuzzleID, func() registry.Policy {
		return NewPuzzle(levels.MustDefault())
	})
	registry.Register(FreePlayID, func() registry.Policy {
		return NewFreePlay()
	})
	registry.Register(TutorialID, func() registry.Policy {
		return NewTutorial()
	})
}

// IsNewBest reports whether score beats best. Fewer placements is better;
// any score beats a missing best.
func IsNewBest(score int, best *int) bool {
	return best == nil || score < *best
}
