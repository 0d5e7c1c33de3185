package radial

import "math"

// CornerMethod selects the algorithm used by [ApplyCornerRadius].
type CornerMethod int

const (
	// An arc-shaped reduction around each vertex.
	ArcCorners CornerMethod = iota
	// A blend of the whole outline toward the circle, strongest at the
	// vertices.
	BlendCorners
	// A cubic smoothstep falloff around each vertex.
	AlternativeCorners
)

// cornerPhase returns the angular position of a polygon's first vertex. The
// constants encode each polygon's corner-vs-flat-side starting orientation
// and must match the distance functions in shape.go, so they are pinned here
// rather than derived.
func cornerPhase(corners int) float64 {
	switch corners {
	case 3:
		return math.Pi / 6
	case 4:
		return math.Pi / 4
	case 5:
		return math.Pi / 5
	default:
		return 0
	}
}

// nearestCornerOffset returns the angular distance from angle to the nearest
// of the evenly spaced corners, the first of which sits at phase.
func nearestCornerOffset(angle, phase float64, corners int) float64 {
	sector := 2 * math.Pi / float64(corners)
	rel := math.Mod(wrapAngle(angle)-phase, sector)
	if rel < 0 {
		rel += sector
	}
	return min(rel, sector-rel)
}

// ApplyCornerRadius rounds the corners of a shape distance. The distance and
// angle are the output and input of one of the shape distance functions,
// radius in [0, 1] is the rounding strength, and corners is the shape's
// corner count (a star's tine count). Radii ≤ 0 and corner counts < 3 leave
// the distance unchanged.
//
// Every method's falloff reaches zero exactly at the edge of its effect
// window, so the adjusted distance is continuous as the angle crosses corner
// boundaries.
func ApplyCornerRadius(distance, angle, radius float64, corners int, method CornerMethod) float64 {
	if radius <= 0 || corners < 3 {
		return distance
	}
	switch method {
	case ArcCorners:
		return arcCorners(distance, angle, radius, corners)
	case BlendCorners:
		return blendCorners(distance, angle, radius, corners)
	case AlternativeCorners:
		return alternativeCorners(distance, angle, radius, corners)
	default:
		return distance
	}
}

// arcCorners subtracts a falloff-weighted reduction around the nearest
// vertex. Shapes with four corners or fewer get a boosted effective radius,
// as fewer corners need a stronger per-corner effect to look consistent.
func arcCorners(distance, angle, radius float64, corners int) float64 {
	eff := radius
	if corners <= 4 {
		eff = min(radius*1.5, 1)
	}
	halfSector := math.Pi / float64(corners)
	maxEffect := halfSector * eff
	offset := nearestCornerOffset(angle, cornerPhase(corners), corners)
	if offset >= maxEffect {
		return distance
	}
	falloff := 1 - (offset/maxEffect)*(offset/maxEffect)
	vertexDistance := 1 / math.Cos(math.Pi/float64(corners))
	return distance - vertexDistance*eff*0.35*falloff
}

// blendCorners softens the whole outline by blending the distance toward the
// circle, with full strength at the vertices. A radius of 1 or more
// degenerates the shape to a circle.
func blendCorners(distance, angle, radius float64, corners int) float64 {
	if radius >= 1 {
		return 1
	}
	sector := 2 * math.Pi / float64(corners)
	offset := nearestCornerOffset(angle, cornerPhase(corners), corners)
	// 0 at a corner, 1 at an edge midpoint.
	position := min(2*offset/sector, 1)
	factor := min(max((1-position)/radius, 0), 1)
	return distance + (1-distance)*factor
}

// alternativeCorners finds the nearest corner by raw angular distance (no
// phase offset) and subtracts up to half the distance, scaled by the radius,
// with a cubic smoothstep falloff.
func alternativeCorners(distance, angle, radius float64, corners int) float64 {
	sector := 2 * math.Pi / float64(corners)
	window := sector * 0.3 * radius
	offset := nearestCornerOffset(angle, 0, corners)
	if offset >= window {
		return distance
	}
	t := 1 - offset/window
	smooth := t * t * (3 - 2*t)
	return distance - distance*0.5*radius*smooth
}
