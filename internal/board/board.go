// Package board implements the fixed 13x13 grid of cell states that pieces
// are stamped onto.
//
// Board is a value type: every mutating operation returns a new Board and
// leaves the receiver untouched, so snapshots for undo are plain copies.
package board

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/candlelight/internal/core"
)

// Board dimensions.
const (
	Width  = 13
	Height = 13
)

// CellState is the color of a single cell.
type CellState uint8

const (
	Empty CellState = iota
	Dark
	Light
)

var stateNames = [...]string{
	Empty: "empty",
	Dark:  "dark",
	Light: "light",
}

// String returns "empty", "dark" or "light".
func (s CellState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("cell(%d)", int(s))
}

// ParseCellState converts a cell name back to a CellState.
func ParseCellState(name string) (CellState, bool) {
	for i, n := range stateNames {
		if n == name {
			return CellState(i), true
		}
	}
	return Empty, false
}

// MarshalText implements encoding.TextMarshaler.
func (s CellState) MarshalText() ([]byte, error) {
	if int(s) >= len(stateNames) {
		return nil, fmt.Errorf("board: invalid cell state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CellState) UnmarshalText(text []byte) error {
	parsed, ok := ParseCellState(string(text))
	if !ok {
		return fmt.Errorf("board: unknown cell state %q", string(text))
	}
	*s = parsed
	return nil
}

// Toggle returns the state a cell takes when a piece is placed on it.
// Empty becomes dark; dark and light alternate. A placed cell never
// returns to empty.
func Toggle(s CellState) CellState {
	switch s {
	case Empty:
		return Dark
	case Dark:
		return Light
	case Light:
		return Dark
	}
	return Dark
}

// Board is a Width x Height grid indexed by [x][y].
type Board struct {
	cells [Width][Height]CellState
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// InBounds reports whether p lies on the board.
func InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// IsBorder reports whether p lies outside the playable area.
func IsBorder(p core.Point) bool {
	return !InBounds(p)
}

// Get returns the state at p, or Empty when p is off the board.
func (b Board) Get(p core.Point) CellState {
	if !InBounds(p) {
		return Empty
	}
	return b.cells[p.X][p.Y]
}

// Set returns a copy of the board with p set to state. Off-board points
// return the board unchanged.
func (b Board) Set(p core.Point, state CellState) Board {
	if !InBounds(p) {
		return b
	}
	b.cells[p.X][p.Y] = state
	return b
}

// ToggleAt returns a copy of the board with the cell at p toggled.
func (b Board) ToggleAt(p core.Point) Board {
	return b.Set(p, Toggle(b.Get(p)))
}

// Clone returns an independent copy. Board has value semantics, so this is
// the same as assignment; it exists for readability at call sites.
func (b Board) Clone() Board {
	return b
}

// Count returns the number of cells in the given state.
func (b Board) Count(state CellState) int {
	n := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b.cells[x][y] == state {
				n++
			}
		}
	}
	return n
}

// CellsWith returns every cell in the given state, scanning x then y.
func (b Board) CellsWith(state CellState) []core.Point {
	var out []core.Point
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b.cells[x][y] == state {
				out = append(out, core.P(x, y))
			}
		}
	}
	return out
}

// IsEmpty reports whether no cell has been placed on.
func (b Board) IsEmpty() bool {
	return b.Count(Empty) == Width*Height
}

// String renders the board row by row: '.' empty, 'x' dark, 'o' light.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			switch b.cells[x][y] {
			case Dark:
				sb.WriteByte('x')
			case Light:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
