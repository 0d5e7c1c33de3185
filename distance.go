package radial

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownShape is returned when a shape value or name is not recognized.
var ErrUnknownShape = errors.New("unknown shape")

// ParameterError reports a shape parameter outside its valid domain.
type ParameterError struct {
	Param string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %s = %g is outside its valid domain", e.Param, e.Value)
}

// Options bundles the per-sample parameters of the distance functions.
//
// The zero value disables corner rounding and describes no valid star; use
// [DefaultOptions] as the starting point instead of a composite literal when
// stars are involved.
type Options struct {
	// Rounding strength in [0, 1]. 0 leaves corners sharp.
	CornerRadius float64
	// Algorithm used to round corners.
	CornerMethod CornerMethod
	// Number of star tines. Must be positive.
	Points int
	// Radius of the star's valleys between tines, in (0, 1).
	InnerRadius float64
}

// DefaultOptions are options with sharp corners and a five-pointed star.
var DefaultOptions = Options{
	Points:      5,
	InnerRadius: 0.4,
}

func (o Options) WithCornerRadius(radius float64) Options { o.CornerRadius = radius; return o }
func (o Options) WithCornerMethod(m CornerMethod) Options { o.CornerMethod = m; return o }
func (o Options) WithPoints(points int) Options           { o.Points = points; return o }
func (o Options) WithInnerRadius(radius float64) Options  { o.InnerRadius = radius; return o }

// ShapeDistance returns the radial extent of a shape's outline at an angle,
// relative to the unit circle, with corner rounding applied per opts.
//
// The result is always finite and non-negative. Any failure (an unknown
// shape, a non-finite angle, invalid star parameters) is logged and mapped to
// the circle's distance of 1, so a renderer always receives a drawable
// number.
func ShapeDistance(shape Shape, angle float64, opts Options) float64 {
	d, err := shapeDistance(shape, angle, opts)
	if err != nil {
		Logger().Warn("shape distance fell back to circle",
			"shape", shape.String(), "angle", angle, "err", err)
		return 1
	}
	return d
}

// ShapeDistanceByName is [ShapeDistance] for callers that identify shapes by
// name (ignoring case). Unrecognized names are logged and fall back to the
// circle.
func ShapeDistanceByName(name string, angle float64, opts Options) float64 {
	shape, err := ParseShape(name)
	if err != nil {
		Logger().Warn("shape distance fell back to circle",
			"shape", name, "angle", angle, "err", err)
		return 1
	}
	return ShapeDistance(shape, angle, opts)
}

// shapeDistance evaluates a shape distance, reporting failures to the caller
// instead of applying the fallback policy.
func shapeDistance(shape Shape, angle float64, opts Options) (float64, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0, &ParameterError{Param: "angle", Value: angle}
	}
	a := wrapAngle(angle)
	var d float64
	corners := shape.Corners()
	switch shape {
	case Circle:
		d = 1
	case Star:
		var err error
		d, err = starDistance(a, opts.Points, opts.InnerRadius)
		if err != nil {
			return 0, err
		}
		corners = opts.Points
	case Triangle:
		d = triangleDistance(a)
	case Square:
		d = squareDistance(a)
	case Pentagon:
		d = polygonDistance(a, 5, cornerPhase(5))
	case Hexagon:
		d = polygonDistance(a, 6, cornerPhase(6))
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
	d = ApplyCornerRadius(d, a, opts.CornerRadius, corners, opts.CornerMethod)
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0, fmt.Errorf("%v distance at angle %g is not drawable: %g", shape, angle, d)
	}
	return d, nil
}

// normalizeFactors correct for each shape's visual size: polygon corner
// distances are inherently larger than a circle's, and without the
// correction switching shapes mid-morph produces a visible size jump.
var normalizeFactors = [...]float64{
	Circle:   1.0,
	Star:     0.85,
	Triangle: 0.75,
	Square:   0.75,
	Pentagon: 0.80,
	Hexagon:  0.85,
}

// NormalizeDistance scales a raw shape distance so that the perceived
// silhouette size stays constant across shape transitions. Unrecognized
// shapes are returned unscaled.
func NormalizeDistance(shape Shape, distance float64) float64 {
	if shape < Circle || shape > Hexagon {
		return distance
	}
	return distance * normalizeFactors[shape]
}
