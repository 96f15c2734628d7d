package gem

import (
	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
)

// Result is the outcome of scanning a board for the target gem.
type Result struct {
	Gems   []core.Shape // light regions equal to the target
	Shapes []core.Shape // every light region
}

// Matched reports whether at least one gem was found.
func (r Result) Matched() bool {
	return len(r.Gems) > 0
}

// FindShapes returns every connected region of the given color.
func FindShapes(b board.Board, color board.CellState) []core.Shape {
	return b.Regions(color)
}

// IsTarget reports whether shape equals target up to translation.
func IsTarget(shape, target core.Shape) bool {
	return shape.Equal(target)
}

// FindGemsAndShapes scans the light regions of b for the target. Dark
// regions are never considered.
func FindGemsAndShapes(b board.Board, target core.Shape) Result {
	regions := FindShapes(b, board.Light)
	var gems []core.Shape
	for _, r := range regions {
		if IsTarget(r, target) {
			gems = append(gems, r)
		}
	}
	return Result{Gems: gems, Shapes: regions}
}

// Bounds returns the bounding box of a shape. Empty shapes give a zero box.
func Bounds(shape core.Shape) core.Rect {
	return shape.Bounds()
}

// CenterOffset returns the offset that centers a normalized shape in the
// MaxSize display square.
func CenterOffset(shape core.Shape) core.Point {
	b := shape.Bounds()
	return core.P(floorDiv(MaxSize-b.W, 2), floorDiv(MaxSize-b.H, 2))
}

// CenteredCells returns the shape shifted by CenterOffset.
func CenteredCells(shape core.Shape) core.Shape {
	return shape.Translate(CenterOffset(shape))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
