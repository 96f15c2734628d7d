package modes

import (
	"fmt"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/queue"
	"github.com/vovakirdan/candlelight/internal/registry"
)

// Puzzle plays the campaign. Each level has a fixed queue that runs out.
type Puzzle struct {
	catalog *levels.Catalog
}

// NewPuzzle creates a puzzle policy over catalog.
func NewPuzzle(catalog *levels.Catalog) *Puzzle {
	return &Puzzle{catalog: catalog}
}

func (p *Puzzle) ID() string    { return PuzzleID }
func (p *Puzzle) Title() string { return "Puzzle" }

// Catalog returns the campaign this policy plays.
func (p *Puzzle) Catalog() *levels.Catalog {
	return p.catalog
}

// Setup looks up opts.World/opts.Level. A level missing from the catalog is
// only accepted when opts carries both an explicit queue and target.
func (p *Puzzle) Setup(opts core.GameOptions) (registry.Setup, error) {
	opts = opts.WithDefaults()
	lvl := p.catalog.Level(opts.World, opts.Level)
	if lvl == nil {
		if len(opts.Queue) > 0 && len(opts.Target) > 0 {
			return registry.Setup{}, nil
		}
		return registry.Setup{}, fmt.Errorf("modes: unknown puzzle %s", levels.PuzzleID(opts.World, opts.Level))
	}
	return registry.Setup{
		Target: lvl.Target.Clone(),
		Queue:  queue.Options{Initial: lvl.Queue},
	}, nil
}

// Next moves to the following catalog level. Explicit overrides do not
// carry over.
func (p *Puzzle) Next(opts core.GameOptions) (core.GameOptions, bool) {
	opts = opts.WithDefaults()
	w, l, ok := p.catalog.Next(opts.World, opts.Level)
	if !ok {
		return core.GameOptions{}, false
	}
	return core.GameOptions{World: w, Level: l}, true
}
