package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/history"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/piece"
	"github.com/vovakirdan/candlelight/internal/queue"
	"github.com/vovakirdan/candlelight/internal/registry"
	"github.com/vovakirdan/candlelight/internal/shapes"
)

// SavedRecord is one undo entry in a save.
type SavedRecord struct {
	Board board.Grid `json:"board"`
	Shape shapes.ID  `json:"shapeName"`
}

// Save is a free play game in a slot.
type Save struct {
	Level          int           `json:"level"`
	Score          int           `json:"alchemizations"`
	Board          board.Grid    `json:"board"`
	Target         core.Shape    `json:"targetGem"`
	CurrentShape   shapes.ID     `json:"currentShapeName"`
	Queue          []shapes.ID   `json:"queueShapes"`
	History        []SavedRecord `json:"history"`
	StartTimestamp int64         `json:"gameStartTimestamp"` // unix milliseconds
	Seed           *int64        `json:"seed,omitempty"`       // nil for an unseeded game
}

// Validate checks the fields a restore depends on.
func (sv *Save) Validate() error {
	switch {
	case sv.Level < 1:
		return fmt.Errorf("session: save level %d", sv.Level)
	case sv.Score < 0:
		return fmt.Errorf("session: save score %d", sv.Score)
	case len(sv.Board) != board.Width:
		return fmt.Errorf("session: save board has %d columns", len(sv.Board))
	case len(sv.Target) == 0:
		return errors.New("session: save has no target")
	case !sv.CurrentShape.Valid():
		return fmt.Errorf("session: save shape %d", int(sv.CurrentShape))
	}
	return nil
}

// DecodeSave parses a stored save. Malformed or invalid payloads give nil,
// which callers treat as an empty slot.
func DecodeSave(data []byte) *Save {
	if len(data) == 0 {
		return nil
	}
	var sv Save
	if err := json.Unmarshal(data, &sv); err != nil {
		log.Warn("ignoring unreadable save", "err", err)
		return nil
	}
	if err := sv.Validate(); err != nil {
		log.Warn("ignoring invalid save", "err", err)
		return nil
	}
	return &sv
}

// Encode serializes the save.
func (sv *Save) Encode() ([]byte, error) {
	data, err := json.Marshal(sv)
	if err != nil {
		return nil, fmt.Errorf("session: cannot encode save: %w", err)
	}
	return data, nil
}

// Save captures the free play game. ok is false outside free play or when
// no piece is active.
func (s *Session) Save() (Save, bool) {
	if s.Mode() != modes.FreePlayID || s.piece == nil {
		return Save{}, false
	}

	records := s.history.Records()
	saved := make([]SavedRecord, len(records))
	for i, r := range records {
		saved[i] = SavedRecord{Board: r.Board.Serialize(), Shape: r.Shape}
	}

	return Save{
		Level:          s.level,
		Score:          s.score,
		Board:          s.board.Serialize(),
		Target:         s.target.Clone(),
		CurrentShape:   s.piece.Shape,
		Queue:          s.queue.Contents(),
		History:        saved,
		StartTimestamp: s.started.UnixMilli(),
		Seed:           cloneSeed(s.opts.Seed),
	}, true
}

// ShouldAutoSave reports whether the front-end should write the slot after
// the current level.
func (s *Session) ShouldAutoSave() bool {
	return s.Mode() == modes.FreePlayID && modes.ShouldAutoSave(s.level)
}

// Restore replaces the session with a free play save. Interaction is
// locked while the state is swapped.
func (s *Session) Restore(sv *Save) error {
	if sv == nil {
		return errors.New("session: no save to restore")
	}
	if err := sv.Validate(); err != nil {
		return err
	}

	p, err := registry.Create(modes.FreePlayID)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.BeginHydration()
	defer s.EndHydration()

	records := make([]history.Record, len(sv.History))
	for i, r := range sv.History {
		records[i] = history.Record{Board: board.Deserialize(r.Board), Shape: r.Shape}
	}

	// A seeded game keeps drawing the same pieces and targets after a reload.
	seed := cloneSeed(sv.Seed)
	q := queue.FromSave(sv.Queue, queue.Options{Seed: seed, Autofill: true, VisibleSize: s.visibleSize})
	current := sv.CurrentShape
	q.Current = &current
	pc := piece.New(sv.CurrentShape)

	s.policy = p
	s.opts = core.GameOptions{Level: sv.Level, World: 1, Seed: seed}
	s.board = board.Deserialize(sv.Board)
	s.piece = &pc
	s.queue = q.Fill()
	s.history = history.FromRecords(records)
	s.target = sv.Target.Normalize()
	s.matched = nil
	s.level = sv.Level
	s.world = 1
	s.score = sv.Score
	s.bestScore = nil
	s.started = time.UnixMilli(sv.StartTimestamp)
	s.tutorial = nil
	s.clearFlags()
	s.hydrating = true

	s.logger.Debug("save restored", "level", s.level, "score", s.score)
	return nil
}

func cloneSeed(seed *int64) *int64 {
	if seed == nil {
		return nil
	}
	v := *seed
	return &v
}
