package modes

import (
	"time"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/gem"
	"github.com/vovakirdan/candlelight/internal/queue"
	"github.com/vovakirdan/candlelight/internal/registry"
)

// Daily is the date-seeded challenge. Everyone playing on the same
// calendar day gets the same target and the same queue. It has one level.
type Daily struct {
	now func() time.Time
}

// NewDaily creates the daily policy. A nil clock uses time.Now.
func NewDaily(now func() time.Time) *Daily {
	if now == nil {
		now = time.Now
	}
	return &Daily{now: now}
}

func (d *Daily) ID() string    { return DailyID }
func (d *Daily) Title() string { return "Daily Challenge" }

// TodayKey returns the storage key for today's challenge.
func (d *Daily) TodayKey() string {
	return core.DateKey(d.now())
}

// TodaySeed returns the seed for today's challenge.
func (d *Daily) TodaySeed() int64 {
	return core.DateSeed(d.now())
}

// Setup uses opts.Seed when set, otherwise today's seed.
func (d *Daily) Setup(opts core.GameOptions) (registry.Setup, error) {
	seed := d.TodaySeed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	return registry.Setup{
		Target: gem.GenerateDaily(seed),
		Queue:  queue.Options{Seed: &seed, Autofill: true},
	}, nil
}

// Next always reports no further content.
func (d *Daily) Next(core.GameOptions) (core.GameOptions, bool) {
	return core.GameOptions{}, false
}
