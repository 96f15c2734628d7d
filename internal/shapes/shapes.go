// Package shapes holds the static table of placeable piece shapes and their
// four hand-authored rotation states.
package shapes

import (
	"fmt"

	"github.com/vovakirdan/candlelight/internal/core"
)

// ID identifies a piece shape.
type ID int

const (
	UpperL ID = iota
	Square
	U
	LowerZ
	UpperZ
	W
	T
)

// RotationCount is the number of rotation slots every shape has.
const RotationCount = 4

// names is ordered by ID; random draws index into this order.
var names = [...]string{
	UpperL: "upper_l",
	Square: "square",
	U:      "u",
	LowerZ: "lower_z",
	UpperZ: "upper_z",
	W:      "w",
	T:      "t",
}

// Symmetric shapes share one array between two slots.
var (
	upperL0 = core.Shape{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	upperL1 = core.Shape{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}

	square0 = core.Shape{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	lowerZ0 = core.Shape{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	lowerZ1 = core.Shape{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}

	upperZ0 = core.Shape{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	upperZ1 = core.Shape{{X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0}}
)

var table = [...][RotationCount]core.Shape{
	UpperL: {upperL0, upperL1, upperL0, upperL1},
	Square: {square0, square0, square0, square0},
	U: {
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}},
		{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	},
	LowerZ: {lowerZ0, lowerZ1, lowerZ0, lowerZ1},
	UpperZ: {upperZ0, upperZ1, upperZ0, upperZ1},
	W: {
		{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	},
	T: {
		{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 2, Y: 2}},
		{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 2}},
		{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0}},
	},
}

// Rotation returns the cells of shape id at rotation index i (mod 4).
// The returned slice is shared with the table and must not be modified.
func Rotation(id ID, i int) core.Shape {
	i %= RotationCount
	if i < 0 {
		i += RotationCount
	}
	return table[id][i]
}

// All returns every shape id in draw order.
func All() []ID {
	ids := make([]ID, len(names))
	for i := range names {
		ids[i] = ID(i)
	}
	return ids
}

// Count returns the number of shapes.
func Count() int {
	return len(names)
}

// String returns the shape's name.
func (id ID) String() string {
	if id < 0 || int(id) >= len(names) {
		return fmt.Sprintf("shape(%d)", int(id))
	}
	return names[id]
}

// Valid reports whether id is a known shape.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < len(names)
}

// Parse returns the shape with the given name.
func Parse(name string) (ID, bool) {
	for i, n := range names {
		if n == name {
			return ID(i), true
		}
	}
	return 0, false
}

// ParseAll converts a list of names, failing on the first unknown one.
func ParseAll(list []string) ([]ID, error) {
	ids := make([]ID, 0, len(list))
	for _, name := range list {
		id, ok := Parse(name)
		if !ok {
			return nil, fmt.Errorf("shapes: unknown shape %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Names converts ids to their names.
func Names(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("shapes: invalid shape id %d", int(id))
	}
	return []byte(names[id]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("shapes: unknown shape %q", string(text))
	}
	*id = parsed
	return nil
}
