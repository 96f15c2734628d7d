// Package queue implements the sequence of upcoming pieces.
//
// A queue either refills itself from a (possibly seeded) random source or
// holds a fixed list that runs out. All operations return a new Queue; the
// receiver's slices are never modified.
package queue

import (
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/shapes"
)

// DefaultVisibleSize is the number of upcoming pieces shown to the player.
const DefaultVisibleSize = 3

// Options configures a new queue.
type Options struct {
	Seed        *int64 // nil draws from an unseeded source
	VisibleSize int    // 0 means DefaultVisibleSize
	Autofill    bool
	Initial     []shapes.ID
}

// Queue is the piece queue state.
type Queue struct {
	Pending     []shapes.ID
	Played      []shapes.ID
	Current     *shapes.ID
	Seed        *int64
	VisibleSize int
	Autofill    bool
}

// New builds a queue and fills it when autofill is on.
func New(opts Options) Queue {
	size := opts.VisibleSize
	if size <= 0 {
		size = DefaultVisibleSize
	}
	q := Queue{
		Pending:     slices.Clone(opts.Initial),
		Seed:        cloneSeed(opts.Seed),
		VisibleSize: size,
		Autofill:    opts.Autofill,
	}
	if q.Autofill {
		return q.Fill()
	}
	return q
}

// FromSave restores pending contents from a save. The saved list is used
// as-is and autofill follows opts.
func FromSave(saved []shapes.ID, opts Options) Queue {
	q := New(Options{Seed: opts.Seed, VisibleSize: opts.VisibleSize})
	q.Pending = slices.Clone(saved)
	q.Autofill = opts.Autofill
	return q
}

func cloneSeed(seed *int64) *int64 {
	if seed == nil {
		return nil
	}
	v := *seed
	return &v
}

// Fill draws pieces until more than VisibleSize are pending. A seeded queue
// creates a fresh generator seeded with seed+len(Pending) on every call, so
// a refill depends only on the seed and the length it starts from.
func (q Queue) Fill() Queue {
	if !q.Autofill {
		return q
	}

	pending := slices.Clone(q.Pending)
	var rng *core.SeededRandom
	if q.Seed != nil {
		rng = core.NewSeededRandom(*q.Seed + int64(len(pending)))
	}

	n := shapes.Count()
	for len(pending) <= q.VisibleSize {
		var i int
		if rng != nil {
			i = rng.Intn(n)
		} else {
			i = rand.IntN(n)
		}
		pending = append(pending, shapes.ID(i))
	}

	q.Pending = pending
	return q
}

// Next pops the front piece. The previous current piece moves to Played.
// ok is false when nothing is pending, which for a fixed queue means the
// pieces have run out.
func (q Queue) Next() (shapes.ID, bool, Queue) {
	if len(q.Pending) == 0 {
		return 0, false, q
	}

	next := q.Pending[0]
	if q.Current != nil {
		q.Played = append(slices.Clone(q.Played), *q.Current)
	}
	q.Pending = slices.Clone(q.Pending[1:])
	q.Current = &next

	if q.Autofill {
		q = q.Fill()
	}
	return next, true, q
}

// Undo puts id back at the front of the queue.
func (q Queue) Undo(id shapes.ID) Queue {
	q.Pending = append([]shapes.ID{id}, q.Pending...)
	return q
}

// Append adds id at the back of the queue.
func (q Queue) Append(id shapes.ID) Queue {
	q.Pending = append(slices.Clone(q.Pending), id)
	return q
}

// Load replaces the pending contents.
func (q Queue) Load(ids []shapes.ID) Queue {
	q.Pending = slices.Clone(ids)
	return q
}

// Visible returns the first VisibleSize pending pieces.
func (q Queue) Visible() []shapes.ID {
	n := core.Min(q.VisibleSize, len(q.Pending))
	return slices.Clone(q.Pending[:n])
}

// Contents returns a copy of every pending piece.
func (q Queue) Contents() []shapes.ID {
	return slices.Clone(q.Pending)
}

// Len returns the number of pending pieces.
func (q Queue) Len() int {
	return len(q.Pending)
}

// IsEmpty reports whether no piece is pending.
func (q Queue) IsEmpty() bool {
	return len(q.Pending) == 0
}
