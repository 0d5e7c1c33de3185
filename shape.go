package radial

import (
	"fmt"
	"math"
	"strings"
)

// Shape identifies one of the supported outline shapes.
type Shape int

const (
	Circle Shape = iota
	Star
	Triangle
	Square
	Pentagon
	Hexagon
)

var shapeNames = [...]string{
	Circle:   "circle",
	Star:     "star",
	Triangle: "triangle",
	Square:   "square",
	Pentagon: "pentagon",
	Hexagon:  "hexagon",
}

func (s Shape) String() string {
	if s < Circle || s > Hexagon {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Corners returns the number of corners of a shape. A circle has none, and a
// star's tine count is a parameter rather than a property of the shape, so
// both report zero.
func (s Shape) Corners() int {
	switch s {
	case Triangle:
		return 3
	case Square:
		return 4
	case Pentagon:
		return 5
	case Hexagon:
		return 6
	default:
		return 0
	}
}

// ParseShape resolves a shape name, ignoring case. It is the only place where
// shapes are identified by strings; all other functions take [Shape] values.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(s), nil
		}
	}
	return Circle, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

const (
	// Divisors of the polygon formulas smaller than this are treated as
	// singular.
	divisorEpsilon = 1e-3
	// Large but finite stand-in distance near a singularity.
	divisorFallback = 100.0
)

// wrapAngle maps any real angle, however far outside [0, 2π), into [0, 2π).
func wrapAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// starDistance computes the distance of a star outline with the given number
// of tines. The oscillation is raised to the fourth power to sharpen the
// tines, then mapped linearly into [innerRadius, 1].
func starDistance(angle float64, points int, innerRadius float64) (float64, error) {
	if points <= 0 {
		return 0, &ParameterError{Param: "points", Value: float64(points)}
	}
	if innerRadius <= 0 || innerRadius >= 1 {
		return 0, &ParameterError{Param: "innerRadius", Value: innerRadius}
	}
	osc := math.Cos(float64(points) * angle / 2)
	pos := 1 - math.Abs(osc)
	sharp := pos * pos * pos * pos
	return innerRadius + (1-innerRadius)*sharp, nil
}

// triangleDistance computes the distance of an equilateral triangle whose
// first vertex sits 30° off the x axis. The apothem term √3/2 differs from
// the generic polygon formula; it is kept for visual compatibility.
func triangleDistance(angle float64) float64 {
	const sector = 2 * math.Pi / 3
	a := wrapAngle(angle - math.Pi/6)
	mid := math.Mod(a, sector) - sector/2
	div := math.Cos(mid) * (math.Sqrt(3) / 2)
	if math.Abs(div) < divisorEpsilon {
		return divisorFallback
	}
	return 1 / div
}

// squareDistance computes the distance of an axis-aligned unit square, with
// vertices on the diagonals.
func squareDistance(angle float64) float64 {
	a := wrapAngle(angle)
	div := max(math.Abs(math.Cos(a)), math.Abs(math.Sin(a)))
	if div < divisorEpsilon {
		return divisorFallback
	}
	return 1 / div
}

// polygonDistance computes the distance of a regular polygon from the offset
// of the angle within its sector and the polygon's apothem. The phase is the
// angular position of the first vertex and must agree with cornerPhase in
// corner.go.
func polygonDistance(angle float64, sides int, phase float64) float64 {
	sector := 2 * math.Pi / float64(sides)
	a := wrapAngle(angle - phase)
	mid := math.Mod(a, sector) - sector/2
	div := math.Cos(mid) * math.Cos(math.Pi/float64(sides))
	if math.Abs(div) < divisorEpsilon {
		return divisorFallback
	}
	return 1 / div
}
