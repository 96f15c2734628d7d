// Package history implements the undo stack of pre-placement snapshots.
package history

import (
	"slices"

	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/shapes"
)

// Record is the board as it was just before a placement, and the shape
// that was placed.
type Record struct {
	Board board.Board
	Shape shapes.ID
}

// History is an undo stack. The zero value is empty and ready to use.
// Operations return a new History and never modify the receiver.
type History struct {
	records []Record
}

// New returns an empty history.
func New() History {
	return History{}
}

// FromRecords builds a history from saved records, oldest first.
func FromRecords(records []Record) History {
	return History{records: slices.Clone(records)}
}

// Push appends a snapshot of b taken before placing id.
func (h History) Push(b board.Board, id shapes.ID) History {
	records := make([]Record, len(h.records), len(h.records)+1)
	copy(records, h.records)
	return History{records: append(records, Record{Board: b, Shape: id})}
}

// Pop removes the newest record. ok is false when the history is empty,
// in which case the history is returned unchanged.
func (h History) Pop() (Record, bool, History) {
	if len(h.records) == 0 {
		return Record{}, false, h
	}
	last := h.records[len(h.records)-1]
	return last, true, History{records: slices.Clone(h.records[:len(h.records)-1])}
}

// Peek returns the newest record without removing it.
func (h History) Peek() (Record, bool) {
	if len(h.records) == 0 {
		return Record{}, false
	}
	return h.records[len(h.records)-1], true
}

// Len returns the number of records.
func (h History) Len() int {
	return len(h.records)
}

// IsEmpty reports whether there is nothing to undo.
func (h History) IsEmpty() bool {
	return len(h.records) == 0
}

// Records returns a copy of every record, oldest first.
func (h History) Records() []Record {
	return slices.Clone(h.records)
}

// Clear returns an empty history.
func (h History) Clear() History {
	return History{}
}
