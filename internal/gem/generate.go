// Package gem generates target gems and matches light regions on a board
// against them.
package gem

import (
	"math/rand/v2"

	"github.com/vovakirdan/candlelight/internal/core"
)

// MaxSize is the side of the square a gem is grown and displayed in.
const MaxSize = 6

// Daily gems have between DailyMinSize and DailyMaxSize cells.
const (
	DailyMinSize = 8
	DailyMaxSize = 12
)

// sizeSteps maps free play levels to gem sizes: a level below steps[i]
// gets size i+1. Levels at or past the last step get len(steps)+1.
var sizeSteps = [...]int{2, 4, 7, 10, 15, 21, 27, 34, 39, 44, 50, 56, 61, 66}

// LevelToSize returns the target gem size for a free play level.
func LevelToSize(level int) int {
	for i, step := range sizeSteps {
		if level < step {
			return i + 1
		}
	}
	return len(sizeSteps) + 1
}

// shuffler abstracts the seeded and unseeded neighbour shuffles.
type shuffler func([]core.Point) []core.Point

func unseededShuffle(points []core.Point) []core.Point {
	out := make([]core.Point, len(points))
	copy(out, points)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

var workArea = core.NewRect(0, 0, MaxSize, MaxSize)

func neighborsInArea(p core.Point) []core.Point {
	var out []core.Point
	for _, n := range core.Neighbors(p) {
		if workArea.Contains(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// walk grows a self-avoiding 4-connected path from start until it has size
// points or every neighbour of the last point is taken. The second case
// returns a smaller shape and is not an error.
func walk(size int, start core.Point, shuffle shuffler) core.Shape {
	points := core.Shape{start}
	candidates := neighborsInArea(start)

	for len(points) < size {
		candidates = shuffle(candidates)

		found := false
		var next core.Point
		for _, c := range candidates {
			if !points.Contains(c) {
				next = c
				found = true
				break
			}
		}
		if !found {
			break
		}

		points = append(points, next)
		candidates = neighborsInArea(next)
	}
	return points.Normalize()
}

// Generate grows a gem of up to size cells starting at the middle of the
// working square. A nil seed uses an unseeded source.
func Generate(size int, seed *int64) core.Shape {
	shuffle := shuffler(unseededShuffle)
	if seed != nil {
		rng := core.NewSeededRandom(*seed)
		shuffle = rng.ShufflePoints
	}
	return walk(size, core.P(MaxSize/2, MaxSize/2), shuffle)
}

// GenerateDaily grows the gem for a daily seed. Size and start point come
// from the same generator as the walk, so every player on the same day gets
// the same gem.
func GenerateDaily(dateSeed int64) core.Shape {
	rng := core.NewSeededRandom(dateSeed)
	size := rng.IntRange(DailyMinSize, DailyMaxSize)
	start := core.P(rng.IntRange(0, MaxSize-1), rng.IntRange(0, MaxSize-1))
	return walk(size, start, rng.ShufflePoints)
}

// FreePlay generates the target for a free play level.
func FreePlay(level int, seed *int64) core.Shape {
	return Generate(LevelToSize(level), seed)
}
