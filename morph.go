package radial

import (
	"math"
)

// MorphMode governs how morph progress is turned into an interpolation
// weight, and how an [Animator] evolves it.
type MorphMode int

const (
	// Progress bounces between two fixed shapes and is used as the
	// interpolation weight directly.
	TwoShape MorphMode = iota
	// Progress cycles through a list of shapes and is eased, so that pair
	// boundaries don't produce a perceptible snap.
	MultiShape
)

// easeInOutCubic remaps progress with a cubic ease-in below 0.5 and a cubic
// ease-out above. Both halves meet at (0.5, 0.5).
func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := 1 - p
	return 1 - 4*q*q*q
}

// MorphedDistance returns the blended radial extent of two shapes at an
// angle. Both endpoint distances are evaluated with opts, normalized with
// [NormalizeDistance], and interpolated with the given progress in [0, 1]
// (values outside the interval are clamped); 0 is fully the from shape, 1
// fully the to shape.
//
// Like [ShapeDistance], it is total: any internal failure is logged and maps
// to the circle's distance of 1.
func MorphedDistance(angle float64, from, to Shape, progress float64, mode MorphMode, opts Options) float64 {
	d, err := morphedDistance(angle, from, to, progress, mode, opts)
	if err != nil {
		Logger().Warn("morphed distance fell back to circle",
			"from", from.String(), "to", to.String(), "angle", angle, "err", err)
		return 1
	}
	return d
}

func morphedDistance(angle float64, from, to Shape, progress float64, mode MorphMode, opts Options) (float64, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0, &ParameterError{Param: "angle", Value: angle}
	}
	df, err := shapeDistance(from, angle, opts)
	if err != nil {
		return 0, err
	}
	dt, err := shapeDistance(to, angle, opts)
	if err != nil {
		return 0, err
	}
	df = NormalizeDistance(from, df)
	dt = NormalizeDistance(to, dt)
	w := min(max(progress, 0), 1)
	if mode == MultiShape {
		w = easeInOutCubic(w)
	}
	return df*(1-w) + dt*w, nil
}
