// Package registry provides a global registry for game mode policies.
// Modes register themselves in init() functions, allowing the session and
// the front-ends to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/queue"
)

// Setup is what a mode supplies to start a level.
type Setup struct {
	Target core.Shape
	Queue  queue.Options
}

// Policy is the strategy for one game mode: how its targets are chosen, how
// its queue is seeded and what follows a completed level.
// Policies contain pure logic with no UI or storage dependencies.
type Policy interface {
	// ID returns a unique identifier for this mode (e.g., "daily", "puzzle").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Setup resolves the target gem and queue for the level described by
	// opts. An error means the level does not exist for this mode.
	Setup(opts core.GameOptions) (Setup, error)

	// Next returns the options for the level after opts. ok is false when
	// the mode has no further content.
	Next(opts core.GameOptions) (next core.GameOptions, ok bool)
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new policy instance.
type Factory func() Policy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a mode's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new policy by its ID.
// Returns an error if the mode ID is not registered.
func Create(id string) (Policy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
