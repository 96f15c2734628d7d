package board

import (
	"testing"

	"github.com/vovakirdan/candlelight/internal/core"
)

func boardFrom(light, dark []core.Point) Board {
	b := New()
	for _, p := range light {
		b = b.Set(p, Light)
	}
	for _, p := range dark {
		b = b.Set(p, Dark)
	}
	return b
}

func TestFloodFillRegion(t *testing.T) {
	light := []core.Point{core.P(2, 2), core.P(3, 2), core.P(3, 3), core.P(8, 8)}
	b := boardFrom(light, []core.Point{core.P(4, 3)})

	region := b.FloodFill(core.P(2, 2), Light, nil)
	if len(region) != 3 {
		t.Fatalf("FloodFill() returned %d cells, expected 3: %v", len(region), region)
	}
	for _, p := range light[:3] {
		if !region.Contains(p) {
			t.Errorf("region missing %v", p)
		}
	}
	if region.Contains(core.P(8, 8)) {
		t.Error("region should not include disconnected cell")
	}
}

func TestFloodFillWrongColorOrVisited(t *testing.T) {
	b := boardFrom([]core.Point{core.P(0, 0)}, nil)

	if got := b.FloodFill(core.P(0, 0), Dark, nil); len(got) != 0 {
		t.Errorf("FloodFill() on wrong color returned %v", got)
	}

	visited := NewVisited()
	visited.Mark(core.P(0, 0))
	if got := b.FloodFill(core.P(0, 0), Light, visited); len(got) != 0 {
		t.Errorf("FloodFill() on visited cell returned %v", got)
	}

	if got := b.FloodFill(core.P(-1, 0), Empty, nil); len(got) != 0 {
		t.Errorf("FloodFill() off the board returned %v", got)
	}
}

func TestFloodFillWholeBoard(t *testing.T) {
	b := New()
	region := b.FloodFill(core.P(6, 6), Empty, nil)
	if len(region) != Width*Height {
		t.Errorf("FloodFill() of empty board = %d cells, expected %d", len(region), Width*Height)
	}
}

func TestRegionsPartition(t *testing.T) {
	// Two light regions, one dark region touching both.
	light := []core.Point{
		core.P(0, 0), core.P(1, 0),
		core.P(5, 5), core.P(5, 6), core.P(6, 6),
	}
	dark := []core.Point{core.P(2, 0), core.P(2, 1), core.P(12, 12)}
	b := boardFrom(light, dark)

	tests := []struct {
		color   CellState
		regions int
		cells   int
	}{
		{Light, 2, len(light)},
		{Dark, 2, len(dark)},
		{Empty, 1, Width*Height - len(light) - len(dark)},
	}

	for _, tc := range tests {
		t.Run(tc.color.String(), func(t *testing.T) {
			regions := b.Regions(tc.color)
			if len(regions) != tc.regions {
				t.Errorf("Regions(%s) = %d regions, expected %d", tc.color, len(regions), tc.regions)
			}

			seen := make(map[core.Point]int)
			total := 0
			for _, r := range regions {
				for _, p := range r {
					seen[p]++
					total++
					if b.Get(p) != tc.color {
						t.Errorf("cell %v in %s region has state %s", p, tc.color, b.Get(p))
					}
				}
			}
			if total != tc.cells {
				t.Errorf("regions cover %d cells, expected %d", total, tc.cells)
			}
			for p, n := range seen {
				if n != 1 {
					t.Errorf("cell %v appears in %d regions", p, n)
				}
			}
		})
	}
}

func TestHasRegion(t *testing.T) {
	if New().HasRegion(Light) {
		t.Error("empty board should have no light region")
	}
	if !boardFrom([]core.Point{core.P(4, 4)}, nil).HasRegion(Light) {
		t.Error("board with a light cell should report a light region")
	}
}
