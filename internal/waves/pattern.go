// Package waves plans enemy waves: which spawn pattern comes next, how
// many enemies it brings and where they appear.
package waves

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/square-dodge/internal/core"
)

// Pattern is a spawn layout.
type Pattern int

const (
	PatternCorners Pattern = iota
	PatternHorizontalLine
	PatternCenter
	PatternTop
	PatternDiagonalSeparate
	PatternRandom

	patternCount
)

// centerSpread is the jitter radius of the center pattern and the half
// width of the diagonal pattern.
const centerSpread = 100

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternCorners:
		return "corners"
	case PatternHorizontalLine:
		return "horizontalLine"
	case PatternCenter:
		return "center"
	case PatternTop:
		return "top"
	case PatternDiagonalSeparate:
		return "diagonalSeparate"
	case PatternRandom:
		return "random"
	default:
		return "unknown"
	}
}

// SpawnDelay returns the pause between consecutive spawns of a wave.
func (p Pattern) SpawnDelay() time.Duration {
	switch p {
	case PatternCorners:
		return 250 * time.Millisecond
	case PatternHorizontalLine, PatternTop:
		return 150 * time.Millisecond
	case PatternCenter:
		return 500 * time.Millisecond
	default:
		return 0
	}
}

// Positions computes n spawn points for the pattern in a w×h scene.
func (p Pattern) Positions(w, h float64, n int, rng *rand.Rand) []core.Vec {
	if n <= 0 {
		return nil
	}
	switch p {
	case PatternCorners:
		return corners(w, h, n)
	case PatternHorizontalLine:
		return line(w, h/2, n)
	case PatternCenter:
		return center(w, h, n, rng)
	case PatternTop:
		return line(w, 0, n)
	case PatternDiagonalSeparate:
		return diagonal(w, h, n)
	case PatternRandom:
		return scattered(w, h, n, rng)
	default:
		return nil
	}
}

func corners(w, h float64, n int) []core.Vec {
	cs := [4]core.Vec{core.V(0, 0), core.V(w, 0), core.V(0, h), core.V(w, h)}
	out := make([]core.Vec, n)
	for i := range out {
		out[i] = cs[i%len(cs)]
	}
	return out
}

func line(w, y float64, n int) []core.Vec {
	spacing := w / float64(n+1)
	out := make([]core.Vec, n)
	for i := range out {
		out[i] = core.V(float64(i+1)*spacing, y)
	}
	return out
}

func center(w, h float64, n int, rng *rand.Rand) []core.Vec {
	cx, cy := w/2, h/2
	out := make([]core.Vec, n)
	for i := range out {
		out[i] = core.V(cx+jitter(rng), cy+jitter(rng))
	}
	return out
}

func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * centerSpread
}

// diagonal samples n points stepping from (w/2-100, h) towards (w/2+100, 0).
// The far endpoint itself is never reached.
func diagonal(w, h float64, n int) []core.Vec {
	xs := rangespace(w/2-centerSpread, w/2+centerSpread, n)
	ys := rangespace(h, 0, n)
	out := make([]core.Vec, n)
	for i := range out {
		out[i] = core.V(xs[i], ys[i])
	}
	return out
}

func rangespace(start, stop float64, steps int) []float64 {
	step := (stop - start) / float64(steps)
	out := make([]float64, steps)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func scattered(w, h float64, n int, rng *rand.Rand) []core.Vec {
	out := make([]core.Vec, n)
	for i := range out {
		out[i] = core.V(rng.Float64()*w, rng.Float64()*h)
	}
	return out
}
