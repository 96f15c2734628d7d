package shapes

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/candlelight/internal/core"
)

func TestRotationWraps(t *testing.T) {
	for _, id := range All() {
		for i := 0; i < RotationCount; i++ {
			base := Rotation(id, i)
			if got := Rotation(id, i+RotationCount); !sameCells(got, base) {
				t.Errorf("%s: Rotation(%d) != Rotation(%d)", id, i+RotationCount, i)
			}
			if got := Rotation(id, i-RotationCount); !sameCells(got, base) {
				t.Errorf("%s: Rotation(%d) != Rotation(%d)", id, i-RotationCount, i)
			}
		}
	}
}

func TestRotationCellCounts(t *testing.T) {
	expected := map[ID]int{
		UpperL: 3,
		Square: 4,
		U:      5,
		LowerZ: 4,
		UpperZ: 5,
		W:      5,
		T:      5,
	}

	for id, n := range expected {
		for i := 0; i < RotationCount; i++ {
			if got := len(Rotation(id, i)); got != n {
				t.Errorf("%s rotation %d has %d cells, expected %d", id, i, got, n)
			}
		}
	}
}

func TestSymmetricShapesShareSlots(t *testing.T) {
	tests := []struct {
		id    ID
		pairs [][2]int
	}{
		{UpperL, [][2]int{{0, 2}, {1, 3}}},
		{Square, [][2]int{{0, 1}, {0, 2}, {0, 3}}},
		{LowerZ, [][2]int{{0, 2}, {1, 3}}},
		{UpperZ, [][2]int{{0, 2}, {1, 3}}},
	}

	for _, tc := range tests {
		for _, pair := range tc.pairs {
			if !sameCells(Rotation(tc.id, pair[0]), Rotation(tc.id, pair[1])) {
				t.Errorf("%s: rotation %d and %d should be identical", tc.id, pair[0], pair[1])
			}
		}
	}
}

func TestRotationFitsThreeByThree(t *testing.T) {
	for _, id := range All() {
		for i := 0; i < RotationCount; i++ {
			for _, p := range Rotation(id, i) {
				if p.X < 0 || p.X > 2 || p.Y < 0 || p.Y > 2 {
					t.Errorf("%s rotation %d has cell %v outside 3x3 box", id, i, p)
				}
			}
		}
	}
}

func TestParseAndString(t *testing.T) {
	expected := []string{"upper_l", "square", "u", "lower_z", "upper_z", "w", "t"}

	ids := All()
	if len(ids) != len(expected) {
		t.Fatalf("All() returned %d ids, expected %d", len(ids), len(expected))
	}
	for i, name := range expected {
		if ids[i].String() != name {
			t.Errorf("All()[%d] = %s, expected %s", i, ids[i], name)
		}
		parsed, ok := Parse(name)
		if !ok || parsed != ids[i] {
			t.Errorf("Parse(%q) = %v, %v", name, parsed, ok)
		}
	}

	if _, ok := Parse("l"); ok {
		t.Error("Parse(\"l\") should fail")
	}
	if _, err := ParseAll([]string{"u", "bogus"}); err == nil {
		t.Error("ParseAll() with unknown name should fail")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal([]ID{W, Square})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `["w","square"]` {
		t.Errorf("Marshal = %s, expected [\"w\",\"square\"]", data)
	}

	var back []ID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(back) != 2 || back[0] != W || back[1] != Square {
		t.Errorf("Unmarshal = %v", back)
	}

	if err := json.Unmarshal([]byte(`["hexagon"]`), &back); err == nil {
		t.Error("Unmarshal of unknown shape should fail")
	}
}

func sameCells(a, b core.Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
