// Package piece implements the player-controlled piece: movement, rotation,
// placement validation and stamping onto a board.
//
// Move, Rotate and Place never validate; callers check CanMove, CanRotate
// and CanPlace first.
package piece

import (
	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/shapes"
)

// StartPosition is where every new piece appears.
var StartPosition = core.P(5, 5)

// Piece is the active piece's position, shape and rotation slot.
type Piece struct {
	Position core.Point `json:"position"`
	Shape    shapes.ID  `json:"shape"`
	Rotation int        `json:"rotation"`
}

// New returns a piece of the given shape at the start position, rotation 0.
func New(shape shapes.ID) Piece {
	return Piece{
		Position: StartPosition,
		Shape:    shape,
	}
}

// Cells returns the rotation's cells without the position applied.
func (p Piece) Cells() core.Shape {
	return shapes.Rotation(p.Shape, p.Rotation)
}

// Absolute returns the board cells covered by the piece.
func (p Piece) Absolute() core.Shape {
	return p.Cells().Translate(p.Position)
}

func fits(cells core.Shape, at core.Point) bool {
	for _, c := range cells {
		if board.IsBorder(c.Add(at)) {
			return false
		}
	}
	return true
}

// CanMove reports whether the piece stays on the board after moving one
// cell in dir. Cell colors do not affect movement.
func CanMove(p Piece, _ board.Board, dir core.Dir) bool {
	return fits(p.Cells(), p.Position.Add(dir.Delta()))
}

// Move translates the piece one cell in dir.
func Move(p Piece, dir core.Dir) Piece {
	p.Position = p.Position.Add(dir.Delta())
	return p
}

// CanRotate reports whether the next rotation slot fits on the board at the
// current position. There are no wall kicks.
func CanRotate(p Piece, _ board.Board) bool {
	return fits(shapes.Rotation(p.Shape, p.Rotation+1), p.Position)
}

// Rotate advances the piece to the next rotation slot.
func Rotate(p Piece) Piece {
	p.Rotation = (p.Rotation + 1) % shapes.RotationCount
	return p
}

// CanPlace reports whether every covered cell is on the board and not
// blocked.
func CanPlace(p Piece, b board.Board) bool {
	for _, c := range p.Absolute() {
		if board.IsBorder(c) || blocked(b, c) {
			return false
		}
	}
	return true
}

// blocked always reports false; no current mode has blocker cells.
func blocked(board.Board, core.Point) bool {
	return false
}

// Invalid is the negation of CanPlace.
func Invalid(p Piece, b board.Board) bool {
	return !CanPlace(p, b)
}

// Place toggles every cell the piece covers and returns the new board.
func Place(p Piece, b board.Board) board.Board {
	for _, c := range p.Absolute() {
		b = b.ToggleAt(c)
	}
	return b
}

// Overlay is the state a covered cell would take if the piece were placed.
type Overlay struct {
	Point core.Point      `json:"point"`
	State board.CellState `json:"state"`
}

// Preview returns, for each covered cell, the color it would become. It is
// read-only and intended for display.
func Preview(p Piece, b board.Board) []Overlay {
	cells := p.Absolute()
	out := make([]Overlay, len(cells))
	for i, c := range cells {
		s := board.Toggle(b.Get(c))
		if s == board.Empty {
			s = board.Dark
		}
		out[i] = Overlay{Point: c, State: s}
	}
	return out
}
