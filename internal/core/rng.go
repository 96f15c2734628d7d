package core

import (
	"fmt"
	"math"
	"time"
)

// LCG parameters shared by every client so that seeded content is identical
// across machines.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff
)

// SeededRandom is a 31-bit linear congruential generator. The step is
// computed in float64: once the product passes 2^53 it rounds, and the
// rounded value is what other clients reduce, so exact integer arithmetic
// would drift from them after the first draw.
type SeededRandom struct {
	state float64
}

// NewSeededRandom creates a generator from the given seed.
func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{state: float64(seed)}
}

// Next advances the generator and returns a value in [0, 2^31).
func (r *SeededRandom) Next() int {
	v := math.Mod(r.state*lcgMultiplier+lcgIncrement, 1<<32)
	if v < 0 {
		v += 1 << 32
	}
	r.state = float64(uint32(v) & lcgMask)
	return int(r.state)
}

// IntRange returns a value in [min, max], both inclusive.
func (r *SeededRandom) IntRange(min, max int) int {
	return min + r.Next()%(max-min+1)
}

// Intn returns a value in [0, n). n must be positive.
func (r *SeededRandom) Intn(n int) int {
	return r.Next() % n
}

// ShufflePoints returns a Fisher-Yates shuffled copy of points.
func (r *SeededRandom) ShufflePoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Next() % (i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// HashString folds s into a non-negative integer using 32-bit wrapping
// arithmetic (hash*31 + char per UTF-16 code unit).
func HashString(s string) int64 {
	var h int32
	for _, c := range utf16Units(s) {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			units = append(units, uint16(0xd800+(r>>10)), uint16(0xdc00+(r&0x3ff)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

// DateKey returns the storage key for a calendar day: "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateSeed returns the daily seed for t, a hash of the unpadded "Y-M-D" form.
func DateSeed(t time.Time) int64 {
	return HashString(fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day()))
}
