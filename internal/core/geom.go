// Package core provides the fundamental value types shared by the puzzle
// engine: grid points, polyomino shapes, directions, actions and the seeded
// random source. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"slices"
)

// Point is an integer grid coordinate. X grows to the right, Y grows down.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// P is shorthand for constructing a Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dir is one of the four movement directions.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit vector for the direction.
func (d Dir) Delta() Point {
	switch d {
	case DirUp:
		return Point{0, -1}
	case DirDown:
		return Point{0, 1}
	case DirLeft:
		return Point{-1, 0}
	case DirRight:
		return Point{1, 0}
	}
	return Point{}
}

// String returns the lowercase direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Neighbors returns the 4-connected neighbours of p in +x, -x, +y, -y order.
func Neighbors(p Point) [4]Point {
	return [4]Point{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

// Shape is an ordered list of points. A shape on its own is un-anchored;
// callers translate it to place it on a board.
type Shape []Point

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// Translate returns the shape shifted by offset.
func (s Shape) Translate(offset Point) Shape {
	out := make(Shape, len(s))
	for i, p := range s {
		out[i] = p.Add(offset)
	}
	return out
}

// Bounds returns the bounding box of the shape. An empty shape has a zero
// bounding box.
func (s Shape) Bounds() Rect {
	if len(s) == 0 {
		return Rect{}
	}
	minX, minY := s[0].X, s[0].Y
	maxX, maxY := s[0].X, s[0].Y
	for _, p := range s[1:] {
		minX = Min(minX, p.X)
		minY = Min(minY, p.Y)
		maxX = Max(maxX, p.X)
		maxY = Max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX-minX+1, maxY-minY+1)
}

// Normalize translates the shape so that its minimum x and y are both 0.
// Point order is preserved.
func (s Shape) Normalize() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	b := s.Bounds()
	return s.Translate(Point{-b.X, -b.Y})
}

// Sorted returns a copy of the shape sorted by (x, y).
func (s Shape) Sorted() Shape {
	out := s.Clone()
	slices.SortFunc(out, func(a, b Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	return out
}

// Equal reports whether two shapes cover the same cells up to translation.
// Rotations and reflections are not considered equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	a := s.Normalize().Sorted()
	b := other.Normalize().Sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p is one of the shape's points.
func (s Shape) Contains(p Point) bool {
	return slices.Contains(s, p)
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
