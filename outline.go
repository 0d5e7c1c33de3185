package radial

import (
	"iter"
	"math"
)

// Outline samples a morphed outline at n evenly spaced angles, starting at
// angle 0, and yields the Cartesian points a renderer would connect. Sampling
// a single, unmorphed shape is the degenerate case from == to.
//
// Like the distance functions it wraps, Outline is total: every yielded point
// is finite.
func Outline(from, to Shape, progress float64, mode MorphMode, n int, opts Options) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n <= 0 {
			return
		}
		step := 2 * math.Pi / float64(n)
		for i := range n {
			angle := float64(i) * step
			r := MorphedDistance(angle, from, to, progress, mode, opts)
			sin, cos := math.Sincos(angle)
			if !yield(Pt(r*cos, r*sin)) {
				return
			}
		}
	}
}
