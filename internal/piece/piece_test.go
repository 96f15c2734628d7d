package piece

import (
	"testing"

	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/shapes"
)

func TestNew(t *testing.T) {
	p := New(shapes.T)
	if p.Position != core.P(5, 5) || p.Rotation != 0 || p.Shape != shapes.T {
		t.Errorf("New(t) = %+v", p)
	}
}

func TestCanMoveAtEdges(t *testing.T) {
	b := board.New()

	// square occupies (x..x+1, y..y+1)
	tests := []struct {
		name     string
		pos      core.Point
		dir      core.Dir
		expected bool
	}{
		{"center up", core.P(5, 5), core.DirUp, true},
		{"top edge up", core.P(5, 0), core.DirUp, false},
		{"left edge left", core.P(0, 5), core.DirLeft, false},
		{"right edge right", core.P(11, 5), core.DirRight, false},
		{"one before right edge", core.P(10, 5), core.DirRight, true},
		{"bottom edge down", core.P(5, 11), core.DirDown, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Piece{Position: tc.pos, Shape: shapes.Square}
			if got := CanMove(p, b, tc.dir); got != tc.expected {
				t.Errorf("CanMove() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMovementIgnoresCellColors(t *testing.T) {
	b := board.New()
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			b = b.Set(core.P(x, y), board.Light)
		}
	}
	p := New(shapes.U)
	for _, d := range []core.Dir{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if !CanMove(p, b, d) {
			t.Errorf("CanMove(%s) on a full board should be true", d)
		}
	}
}

func TestMoveIsUnchecked(t *testing.T) {
	p := Piece{Position: core.P(0, 0), Shape: shapes.Square}
	moved := Move(p, core.DirLeft)
	if moved.Position != core.P(-1, 0) {
		t.Errorf("Move() = %v, expected (-1,0)", moved.Position)
	}
	if p.Position != core.P(0, 0) {
		t.Error("Move() modified its argument")
	}
}

func TestRotate(t *testing.T) {
	b := board.New()
	p := New(shapes.W)
	for i := 1; i <= 5; i++ {
		if !CanRotate(p, b) {
			t.Fatalf("CanRotate() false at center, step %d", i)
		}
		p = Rotate(p)
		if p.Rotation != i%4 {
			t.Errorf("rotation after %d steps = %d, expected %d", i, p.Rotation, i%4)
		}
	}

	// upper_l rotation 1 is the vertical bar at x=1; at x=-1 it sits in
	// column 0 but rotation 0 would need column -1.
	edge := Piece{Position: core.P(-1, 4), Shape: shapes.UpperL, Rotation: 1}
	if !CanPlace(edge, b) {
		t.Fatal("vertical upper_l should fit against the left edge")
	}
	if CanRotate(edge, b) {
		t.Error("CanRotate() should fail when the next rotation leaves the board")
	}
}

func TestCanPlace(t *testing.T) {
	b := board.New().Set(core.P(6, 6), board.Light)

	if !CanPlace(New(shapes.Square), b) {
		t.Error("CanPlace() should allow placement over colored cells")
	}
	out := Piece{Position: core.P(12, 12), Shape: shapes.Square}
	if CanPlace(out, b) {
		t.Error("CanPlace() should reject cells off the board")
	}
	if !Invalid(out, b) {
		t.Error("Invalid() should be the negation of CanPlace()")
	}
}

func TestPlaceToggles(t *testing.T) {
	p := New(shapes.UpperL) // cells (5,6) (6,6) (7,6)
	b := board.New()

	b1 := Place(p, b)
	for _, c := range p.Absolute() {
		if b1.Get(c) != board.Dark {
			t.Errorf("after first place %v = %s, expected dark", c, b1.Get(c))
		}
	}
	if b1.Count(board.Dark) != 3 {
		t.Errorf("first place colored %d cells, expected 3", b1.Count(board.Dark))
	}

	b2 := Place(p, b1)
	for _, c := range p.Absolute() {
		if b2.Get(c) != board.Light {
			t.Errorf("after second place %v = %s, expected light", c, b2.Get(c))
		}
	}

	b3 := Place(p, b2)
	if b3.Count(board.Dark) != 3 || b3.Count(board.Light) != 0 {
		t.Errorf("third place should turn light back to dark:\n%s", b3)
	}

	if !b.IsEmpty() {
		t.Error("Place() modified the original board")
	}
}

func TestPreview(t *testing.T) {
	p := New(shapes.UpperL)
	b := board.New().Set(core.P(5, 6), board.Dark).Set(core.P(6, 6), board.Light)

	overlay := Preview(p, b)
	expected := map[core.Point]board.CellState{
		core.P(5, 6): board.Light,
		core.P(6, 6): board.Dark,
		core.P(7, 6): board.Dark,
	}
	if len(overlay) != len(expected) {
		t.Fatalf("Preview() returned %d cells, expected %d", len(overlay), len(expected))
	}
	for _, o := range overlay {
		if o.State != expected[o.Point] {
			t.Errorf("Preview() at %v = %s, expected %s", o.Point, o.State, expected[o.Point])
		}
	}
	if b.Get(core.P(7, 6)) != board.Empty {
		t.Error("Preview() modified the board")
	}
}
