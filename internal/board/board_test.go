package board

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/candlelight/internal/core"
)

func TestToggleCycle(t *testing.T) {
	expected := []CellState{Dark, Light, Dark, Light, Dark, Light}

	s := Empty
	for i, want := range expected {
		s = Toggle(s)
		if s != want {
			t.Errorf("toggle #%d = %s, expected %s", i+1, s, want)
		}
		if s == Empty {
			t.Fatalf("toggle #%d returned to empty", i+1)
		}
	}
}

func TestGetSetBounds(t *testing.T) {
	b := New()

	outside := []core.Point{
		core.P(-1, 0), core.P(0, -1), core.P(Width, 0), core.P(0, Height), core.P(100, 100),
	}
	for _, p := range outside {
		if got := b.Get(p); got != Empty {
			t.Errorf("Get(%v) = %s, expected empty", p, got)
		}
		if b.Set(p, Light) != b {
			t.Errorf("Set(%v) should be a no-op", p)
		}
	}

	corner := core.P(Width-1, Height-1)
	next := b.Set(corner, Light)
	if next.Get(corner) != Light {
		t.Errorf("Get(%v) = %s after Set, expected light", corner, next.Get(corner))
	}
	if b.Get(corner) != Empty {
		t.Error("Set() modified the original board")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New().Set(core.P(3, 3), Dark)
	c := b.Clone()
	c = c.ToggleAt(core.P(3, 3))

	if b.Get(core.P(3, 3)) != Dark {
		t.Errorf("original changed to %s", b.Get(core.P(3, 3)))
	}
	if c.Get(core.P(3, 3)) != Light {
		t.Errorf("clone = %s, expected light", c.Get(core.P(3, 3)))
	}
}

func TestCountAndCellsWith(t *testing.T) {
	b := New().
		Set(core.P(0, 0), Dark).
		Set(core.P(1, 0), Light).
		Set(core.P(0, 1), Light)

	if got := b.Count(Light); got != 2 {
		t.Errorf("Count(light) = %d, expected 2", got)
	}
	if got := b.Count(Empty); got != Width*Height-3 {
		t.Errorf("Count(empty) = %d, expected %d", got, Width*Height-3)
	}

	cells := b.CellsWith(Light)
	expected := []core.Point{core.P(0, 1), core.P(1, 0)}
	if len(cells) != len(expected) {
		t.Fatalf("CellsWith(light) = %v, expected %v", cells, expected)
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("CellsWith(light)[%d] = %v, expected %v", i, cells[i], expected[i])
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	b := New().
		Set(core.P(0, 12), Dark).
		Set(core.P(12, 0), Light).
		Set(core.P(6, 6), Light)

	g := b.Serialize()
	if len(g) != Width || len(g[0]) != Height {
		t.Fatalf("Serialize() dims = %dx%d", len(g), len(g[0]))
	}
	if g[12][0] != Light {
		t.Errorf("Serialize()[12][0] = %s, expected light", g[12][0])
	}

	if back := Deserialize(g); back != b {
		t.Errorf("Deserialize(Serialize()) differs:\n%s\nvs\n%s", back, b)
	}

	// The grid is a copy.
	g[6][6] = Empty
	if b.Get(core.P(6, 6)) != Light {
		t.Error("mutating the serialized grid changed the board")
	}
}

func TestDeserializeMalformed(t *testing.T) {
	good := New().Set(core.P(1, 1), Light).Serialize()

	shortColumn := New().Serialize()
	shortColumn[4] = shortColumn[4][:Height-1]

	badState := New().Serialize()
	badState[2][2] = CellState(9)

	tests := []struct {
		name string
		grid Grid
	}{
		{"nil", nil},
		{"too few columns", good[:Width-1]},
		{"too many columns", append(New().Serialize(), make([]CellState, Height))},
		{"short column", shortColumn},
		{"unknown state", badState},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Deserialize(tc.grid); !got.IsEmpty() {
				t.Errorf("Deserialize() should fall back to an empty board, got:\n%s", got)
			}
		})
	}
}

func TestGridJSON(t *testing.T) {
	b := New().Set(core.P(0, 1), Dark)
	data, err := json.Marshal(b.Serialize())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var g Grid
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if g[0][1] != Dark || g[0][0] != Empty {
		t.Errorf("JSON round trip lost cells: %v", g[0][:2])
	}

	if err := json.Unmarshal([]byte(`[["purple"]]`), &g); err == nil {
		t.Error("Unmarshal of unknown cell name should fail")
	}
}

func TestString(t *testing.T) {
	b := New().Set(core.P(0, 0), Dark).Set(core.P(2, 0), Light)
	s := b.String()
	if s[:4] != "x.o." {
		t.Errorf("String() first row = %q, expected prefix %q", s[:4], "x.o.")
	}
}
