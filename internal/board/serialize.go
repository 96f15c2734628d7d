package board

import (
	"github.com/charmbracelet/log"
)

// Grid is the serialized board: Width columns of Height cells each,
// indexed [x][y].
type Grid [][]CellState

// Serialize returns the board as a freshly allocated Grid.
func (b Board) Serialize() Grid {
	g := make(Grid, Width)
	for x := 0; x < Width; x++ {
		g[x] = make([]CellState, Height)
		copy(g[x], b.cells[x][:])
	}
	return g
}

// Deserialize rebuilds a board from a Grid. A grid with the wrong number of
// columns or rows, or with an unknown cell value, yields an empty board and
// a logged warning. Malformed data is never partially applied.
func Deserialize(g Grid) Board {
	if len(g) != Width {
		log.Warn("invalid board width, using empty board", "width", len(g), "expected", Width)
		return New()
	}
	for x := range g {
		if len(g[x]) != Height {
			log.Warn("invalid board height, using empty board", "column", x, "height", len(g[x]), "expected", Height)
			return New()
		}
	}

	var b Board
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			s := g[x][y]
			if s > Light {
				log.Warn("invalid cell state, using empty board", "x", x, "y", y, "state", int(s))
				return New()
			}
			b.cells[x][y] = s
		}
	}
	return b
}
