package levels

import (
	"fmt"
	"strconv"
	"strings"
)

// Progress is how far a player has come through the campaign, plus their
// best (lowest) score per level id.
type Progress struct {
	MaxWorld   int            `json:"maxWorldNumber"`
	MaxLevel   int            `json:"maxLevelNumber"`
	BestScores map[string]int `json:"levelScores"`
}

// NewProgress returns progress with only the first level unlocked.
func NewProgress() Progress {
	return Progress{MaxWorld: 1, MaxLevel: 1, BestScores: make(map[string]int)}
}

// PuzzleID builds the "world_level" id.
func PuzzleID(world, level int) string {
	return fmt.Sprintf("%d_%d", world, level)
}

// ParsePuzzleID splits a "world_level" id.
func ParsePuzzleID(id string) (world, level int, ok bool) {
	w, l, found := strings.Cut(id, "_")
	if !found {
		return 0, 0, false
	}
	world, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, false
	}
	level, err = strconv.Atoi(l)
	if err != nil {
		return 0, 0, false
	}
	return world, level, true
}

// LessWorldLevel orders (world, level) pairs.
func LessWorldLevel(w1, l1, w2, l2 int) bool {
	if w1 != w2 {
		return w1 < w2
	}
	return l1 < l2
}

// IsUnlocked reports whether (world, level) is playable given the progress.
func (p Progress) IsUnlocked(world, level int) bool {
	if world < p.MaxWorld {
		return true
	}
	return world == p.MaxWorld && level <= p.MaxLevel
}

// Best returns the best score for a level.
func (p Progress) Best(world, level int) (int, bool) {
	s, ok := p.BestScores[PuzzleID(world, level)]
	return s, ok
}

// UpdateAfterComplete unlocks the level after (world, level) if it is
// further than the current maximum and keeps the lower of the old and new
// scores. The receiver is not modified.
func (p Progress) UpdateAfterComplete(c *Catalog, world, level, score int) Progress {
	out := Progress{
		MaxWorld:   p.MaxWorld,
		MaxLevel:   p.MaxLevel,
		BestScores: make(map[string]int, len(p.BestScores)+1),
	}
	for k, v := range p.BestScores {
		out.BestScores[k] = v
	}

	if nw, nl, ok := c.Next(world, level); ok && LessWorldLevel(out.MaxWorld, out.MaxLevel, nw, nl) {
		out.MaxWorld, out.MaxLevel = nw, nl
	}

	id := PuzzleID(world, level)
	if old, ok := out.BestScores[id]; !ok || score < old {
		out.BestScores[id] = score
	}
	return out
}
