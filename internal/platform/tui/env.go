package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candlelight/internal/config"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/registry"
	"github.com/vovakirdan/candlelight/internal/session"
	"github.com/vovakirdan/candlelight/internal/storage"
)

// Env holds what every screen shares. Store may be nil, in which case
// nothing is persisted and every puzzle level is open.
type Env struct {
	Store   *storage.Store
	Config  config.Config
	Catalog *levels.Catalog
	Logger  *log.Logger
}

// NewEnv fills a missing catalog with the built-in campaign.
func NewEnv(store *storage.Store, cfg config.Config, catalog *levels.Catalog) Env {
	if catalog == nil {
		catalog = levels.MustDefault()
	}
	return Env{Store: store, Config: cfg, Catalog: catalog, Logger: log.Default()}
}

// Selection is a game picked from a menu or the command line.
type Selection struct {
	Mode   string
	World  int
	Level  int
	Slot   string // free play save slot, "" to play without saving
	Resume bool   // continue the game saved in Slot
}

// policy builds the policy for mode, using the environment's catalog for
// puzzles.
func (e Env) policy(mode string) (registry.Policy, error) {
	if mode == modes.PuzzleID {
		return modes.NewPuzzle(e.Catalog), nil
	}
	return registry.Create(mode)
}

// progress returns the stored puzzle progress. Without a store every level
// counts as unlocked.
func (e Env) progress() (levels.Progress, bool) {
	if e.Store == nil {
		return levels.NewProgress(), false
	}
	p, err := e.Store.LoadProgress()
	if err != nil {
		e.Logger.Warn("cannot load puzzle progress", "err", err)
		return levels.NewProgress(), false
	}
	return p, true
}

// bestScore looks up the stored best for a level, nil if there is none.
func (e Env) bestScore(mode string, world, level int) *int {
	if e.Store == nil {
		return nil
	}
	switch mode {
	case modes.DailyID:
		best, err := e.Store.DailyBest(core.DateKey(time.Now()))
		if err != nil {
			e.Logger.Warn("cannot load daily best", "err", err)
			return nil
		}
		return best
	case modes.PuzzleID:
		p, _ := e.progress()
		if best, ok := p.Best(world, level); ok {
			return &best
		}
	}
	return nil
}

// NewSession starts the session for sel. seed is used by the seeded modes;
// the daily challenge always plays today's board.
func (e Env) NewSession(sel Selection, seed *int64) (*session.Session, error) {
	sess := session.New(
		session.WithLogger(e.Logger),
		session.WithVisibleSize(e.Config.Queue.VisibleSize),
	)

	if sel.Mode == modes.FreePlayID && sel.Resume && e.Store != nil {
		sv, err := e.Store.LoadSlot(sel.Slot)
		if err != nil {
			return nil, err
		}
		if sv != nil {
			if err := sess.Restore(sv); err != nil {
				return nil, fmt.Errorf("tui: cannot resume slot %s: %w", sel.Slot, err)
			}
			return sess, nil
		}
	}

	p, err := e.policy(sel.Mode)
	if err != nil {
		return nil, err
	}
	opts := core.GameOptions{World: sel.World, Level: sel.Level}.WithDefaults()
	if sel.Mode != modes.DailyID {
		opts.Seed = seed
	}
	opts.BestScore = e.bestScore(sel.Mode, opts.World, opts.Level)

	if err := sess.Init(p, opts); err != nil {
		return nil, err
	}
	return sess, nil
}
