// Package levels provides the puzzle campaign: worlds of hand-authored
// levels, each with a fixed piece queue and a target gem, plus the player's
// unlock progress through them.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/shapes"
)

//go:embed data/*.yaml
var embedded embed.FS

// Level is one puzzle. Levels are 1-indexed inside their world.
type Level struct {
	World  int
	Number int
	Queue  []shapes.ID
	Target core.Shape
}

// ID returns the "world_level" id used for progress and scores.
func (l *Level) ID() string {
	return PuzzleID(l.World, l.Number)
}

// World is a named group of levels.
type World struct {
	Number int
	Name   string
	Levels []Level
}

// WorldInfo is the display summary of a world.
type WorldInfo struct {
	Number     int
	Name       string
	LevelCount int
}

// Catalog is an ordered, validated set of worlds. It is read-only after
// construction.
type Catalog struct {
	worlds []World
}

// NewCatalog sorts worlds by number and validates them.
func NewCatalog(worlds []World) (*Catalog, error) {
	sorted := make([]World, len(worlds))
	copy(sorted, worlds)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	c := &Catalog{worlds: sorted}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that worlds are numbered 1..n and that the levels of each
// world are numbered 1..m.
func (c *Catalog) Validate() error {
	if len(c.worlds) == 0 {
		return fmt.Errorf("levels: catalog has no worlds")
	}
	for i, w := range c.worlds {
		if w.Number != i+1 {
			return fmt.Errorf("levels: expected world %d, found world %d", i+1, w.Number)
		}
		if len(w.Levels) == 0 {
			return fmt.Errorf("levels: world %d has no levels", w.Number)
		}
		for j, l := range w.Levels {
			if l.Number != j+1 {
				return fmt.Errorf("levels: world %d: expected level %d, found level %d", w.Number, j+1, l.Number)
			}
			if len(l.Queue) == 0 {
				return fmt.Errorf("levels: level %s has an empty queue", l.ID())
			}
		}
	}
	return nil
}

// Worlds returns metadata for every world in order.
func (c *Catalog) Worlds() []WorldInfo {
	out := make([]WorldInfo, len(c.worlds))
	for i, w := range c.worlds {
		out[i] = WorldInfo{Number: w.Number, Name: w.Name, LevelCount: len(w.Levels)}
	}
	return out
}

// World returns world n, or nil if it does not exist.
func (c *Catalog) World(n int) *World {
	if n < 1 || n > len(c.worlds) {
		return nil
	}
	return &c.worlds[n-1]
}

// Level returns the level, or nil if world or level do not exist.
func (c *Catalog) Level(world, level int) *Level {
	w := c.World(world)
	if w == nil || level < 1 || level > len(w.Levels) {
		return nil
	}
	return &w.Levels[level-1]
}

// Next returns the level after (world, level): the next level in the same
// world, else the first level of the next world. ok is false after the last
// level or for unknown input.
func (c *Catalog) Next(world, level int) (nextWorld, nextLevel int, ok bool) {
	w := c.World(world)
	if w == nil {
		return 0, 0, false
	}
	if level < len(w.Levels) {
		return world, level + 1, true
	}
	if c.World(world+1) == nil {
		return 0, 0, false
	}
	return world + 1, 1, true
}

// TotalLevels counts levels across all worlds.
func (c *Catalog) TotalLevels() int {
	total := 0
	for _, w := range c.worlds {
		total += len(w.Levels)
	}
	return total
}

// LoadFS parses every world file under dir in fsys.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read %s: %w", dir, err)
	}

	var worlds []World
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(e.Name()))) {
			continue
		}
		p := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("levels: cannot read %s: %w", p, err)
		}
		w, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: parsing %s: %w", p, err)
		}
		worlds = append(worlds, w)
	}
	return NewCatalog(worlds)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the campaign shipped with the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadFS(embedded, "data")
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for callers that cannot continue without a
// campaign. It panics if the embedded data is broken.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
