package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/candlelight/internal/config"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/platform/tui"
	"github.com/vovakirdan/candlelight/internal/storage"
)

// loadConfig loads the config file or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// loadCatalog returns the custom campaign from the config, or nil for the
// built-in one.
func loadCatalog(cfg config.Config) *levels.Catalog {
	if cfg.Puzzle.LevelsDir == "" {
		return nil
	}
	catalog, err := levels.NewLoader(config.ExpandPath(cfg.Puzzle.LevelsDir)).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	return catalog
}

func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Server.DBPath
}

// openStore opens the database. Games still work without one, so failure
// is only a warning.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// newEnv loads everything a terminal game needs. The caller closes the
// store.
func newEnv() tui.Env {
	cfg := loadConfig()
	return tui.NewEnv(openStore(cfg), cfg, loadCatalog(cfg))
}

func closeEnv(env tui.Env) {
	if env.Store != nil {
		env.Store.Close()
	}
}
