// Package radial computes radial outlines of simple shapes and smooth
// transitions between them. It is the mathematical core of a starburst or
// concentric pattern generator: for a shape and an angle, it answers "how far
// from the center does the outline lie?", and for a pair of shapes it blends
// the two answers into a morphed outline. It was designed to serve renderers
// that sample an outline at many angles per frame, but it performs no drawing
// of its own.
//
// # Shapes and distances
//
// [Shape] enumerates the supported outlines: [Circle], [Star], [Triangle],
// [Square], [Pentagon], and [Hexagon]. [ShapeDistance] evaluates a shape's
// distance from the center at an angle, relative to the unit circle; a
// distance of 1 is the circle's radius. Angles are periodic and may be any
// real number, including negative values and values beyond 2π.
//
// Distances are total functions: every input produces a finite, usable
// number. Invalid parameters fall back to the circle's distance of 1, and
// near singularities of the polygon formulas the result is capped at a large
// finite value. Failures are reported through the package logger (see
// [SetLogger]); they are never returned as errors or panics from the sampling
// functions.
//
// [NormalizeDistance] scales a raw distance by a per-shape correction factor
// so that switching shapes does not visibly change the silhouette's size;
// polygon corner distances are inherently larger than a circle's.
//
// # Corner rounding
//
// [ApplyCornerRadius] rounds a shape's corners with one of three algorithms,
// selected by [CornerMethod]: an arc-shaped reduction around each vertex, a
// whole-outline blend toward the circle, or a smoothstep falloff. All three
// are continuous as the angle crosses corner boundaries.
//
// # Morphing and animation
//
// [MorphedDistance] interpolates between two shapes' normalized distances
// with a progress value in [0, 1]. In [TwoShape] mode the progress is the
// interpolation weight directly; in [MultiShape] mode it is remapped by a
// cubic ease so that cycling through a list of shapes does not snap at pair
// boundaries.
//
// [Animator] advances progress over wall-clock time, either bouncing between
// two shapes or cycling through a list. It is the only stateful type in the
// package; everything else is a pure computation over explicit inputs and may
// be called concurrently without coordination.
//
// # Outlines
//
// [Outline] samples a morphed outline at evenly spaced angles and yields
// Cartesian [Point] values, which is the form a renderer typically consumes.
package radial
