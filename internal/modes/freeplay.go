package modes

import (
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/gem"
	"github.com/vovakirdan/candlelight/internal/queue"
	"github.com/vovakirdan/candlelight/internal/registry"
)

// Slots are the free play save slot names.
var Slots = []string{"A", "B", "C", "D"}

// ValidSlot reports whether name is a save slot.
func ValidSlot(name string) bool {
	for _, s := range Slots {
		if s == name {
			return true
		}
	}
	return false
}

// ShouldAutoSave reports whether finishing level should write the slot.
// Level 1 is never saved.
func ShouldAutoSave(level int) bool {
	return level > 1
}

// FreePlay is endless play with targets growing with the level.
type FreePlay struct{}

// NewFreePlay creates the free play policy.
func NewFreePlay() *FreePlay {
	return &FreePlay{}
}

func (f *FreePlay) ID() string    { return FreePlayID }
func (f *FreePlay) Title() string { return "Free Play" }

func (f *FreePlay) Setup(opts core.GameOptions) (registry.Setup, error) {
	return levelSetup(opts), nil
}

// Next is always the following level.
func (f *FreePlay) Next(opts core.GameOptions) (core.GameOptions, bool) {
	return nextLevel(opts), true
}

// levelSetup is shared by the size-stepped modes. With a seed the target is
// seeded per level so a replay of the same seed sees the same targets.
func levelSetup(opts core.GameOptions) registry.Setup {
	opts = opts.WithDefaults()
	var gemSeed *int64
	if opts.Seed != nil {
		s := *opts.Seed + int64(opts.Level)
		gemSeed = &s
	}
	return registry.Setup{
		Target: gem.FreePlay(opts.Level, gemSeed),
		Queue:  queue.Options{Seed: opts.Seed, Autofill: true},
	}
}

func nextLevel(opts core.GameOptions) core.GameOptions {
	next := opts.WithDefaults().Clone()
	next.Level++
	next.Target = nil
	next.Queue = nil
	return next
}
