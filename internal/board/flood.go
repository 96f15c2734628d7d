package board

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/candlelight/internal/core"
)

// Visited tracks cells already claimed by a flood fill. One Visited can be
// shared across several fills so that each cell belongs to one region.
type Visited struct {
	m *intmap.Map[int, struct{}]
}

// NewVisited creates an empty visited set sized for a full board.
func NewVisited() *Visited {
	return &Visited{m: intmap.New[int, struct{}](Width * Height)}
}

func cellKey(p core.Point) int {
	return p.X*Height + p.Y
}

// Has reports whether p has been visited.
func (v *Visited) Has(p core.Point) bool {
	return v.m.Has(cellKey(p))
}

// Mark records p as visited.
func (v *Visited) Mark(p core.Point) {
	v.m.Put(cellKey(p), struct{}{})
}

// Len returns the number of visited cells.
func (v *Visited) Len() int {
	return v.m.Len()
}

// FloodFill returns the 4-connected region of cells with the given color
// that contains start. Cells already in visited are skipped and every cell
// returned is added to visited. The fill is iterative so region size is not
// limited by stack depth. A nil visited uses a private set.
func (b Board) FloodFill(start core.Point, color CellState, visited *Visited) core.Shape {
	if visited == nil {
		visited = NewVisited()
	}

	var region core.Shape
	stack := []core.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !InBounds(p) || visited.Has(p) || b.cells[p.X][p.Y] != color {
			continue
		}
		visited.Mark(p)
		region = append(region, p)

		for _, n := range core.Neighbors(p) {
			stack = append(stack, n)
		}
	}
	return region
}

// Regions returns every maximal connected region of the given color. The
// board is scanned once, x outer and y inner.
func (b Board) Regions(color CellState) []core.Shape {
	visited := NewVisited()
	var regions []core.Shape
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			p := core.P(x, y)
			if b.cells[x][y] != color || visited.Has(p) {
				continue
			}
			if region := b.FloodFill(p, color, visited); len(region) > 0 {
				regions = append(regions, region)
			}
		}
	}
	return regions
}

// HasRegion reports whether at least one cell of the given color exists.
func (b Board) HasRegion(color CellState) bool {
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b.cells[x][y] == color {
				return true
			}
		}
	}
	return false
}
