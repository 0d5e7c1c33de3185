package radial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

// testAngles covers both halves of the circle, exact singular directions of
// the polygon formulas, and inputs far outside [0, 2π).
var testAngles = [...]float64{
	0, 0.5, math.Pi / 6, math.Pi / 4, math.Pi / 2, 1.0, 2.5, math.Pi,
	4.2, 3 * math.Pi / 2, 2 * math.Pi, -0.5, -math.Pi, -7.3,
	123.456, -1000.25, 6*math.Pi + 0.1,
}

var allShapes = [...]Shape{Circle, Star, Triangle, Square, Pentagon, Hexagon}
