package radial

import (
	"testing"
	"time"
)

func TestAnimatorBounce(t *testing.T) {
	a := NewAnimator(TwoShape, []Shape{Triangle, Circle})

	// Speed 0.25 advances progress by exactly 0.25 per nominal frame.
	for i := 1; i <= 3; i++ {
		a.Tick(0.25, nominalFrame)
		diff(t, 0.25*float64(i), a.Progress)
	}

	a.Tick(0.25, nominalFrame)
	diff(t, 1.0, a.Progress)

	// Direction has flipped: progress comes back down, bottoms out at 0, and
	// climbs again.
	a.Tick(0.25, nominalFrame)
	diff(t, 0.75, a.Progress)
	for range 3 {
		a.Tick(0.25, nominalFrame)
	}
	diff(t, 0.0, a.Progress)
	a.Tick(0.25, nominalFrame)
	diff(t, 0.25, a.Progress)

	// The bounce never leaves [0, 1].
	for range 1000 {
		a.Tick(0.37, nominalFrame)
		if a.Progress < 0 || a.Progress > 1 {
			t.Fatalf("bounce progress %v left [0, 1]", a.Progress)
		}
	}
}

func TestAnimatorMultiShapeCycle(t *testing.T) {
	a := NewAnimator(MultiShape, []Shape{Circle, Star, Hexagon})
	diff(t, 0, a.Current)
	diff(t, 1, a.Next)

	complete := func() {
		for range 4 {
			a.Tick(0.25, nominalFrame)
		}
	}

	complete()
	diff(t, 0.0, a.Progress)
	diff(t, 1, a.Current)
	diff(t, 2, a.Next)

	complete()
	diff(t, 2, a.Current)
	diff(t, 0, a.Next)

	// After three completed cycles the pair is back where it started.
	complete()
	diff(t, 0, a.Current)
	diff(t, 1, a.Next)
}

func TestAnimatorMultiShapeProgressRange(t *testing.T) {
	a := NewAnimator(MultiShape, []Shape{Circle, Star})
	for range 1000 {
		a.Tick(0.37, nominalFrame)
		if a.Progress < 0 || a.Progress >= 1 {
			t.Fatalf("cycle progress %v left [0, 1)", a.Progress)
		}
	}
}

func TestAnimatorMultiShapeTooFewShapes(t *testing.T) {
	for _, shapes := range [][]Shape{nil, {Pentagon}} {
		a := NewAnimator(MultiShape, shapes)
		for range 10 {
			a.Tick(0.25, nominalFrame)
		}
		// Progress still wraps, but there is no pair to advance to.
		diff(t, 0, a.Current)
		diff(t, 0, a.Next)
	}
}

func TestAnimatorFrameRateIndependence(t *testing.T) {
	coarse := NewAnimator(TwoShape, []Shape{Circle, Star})
	fine := NewAnimator(TwoShape, []Shape{Circle, Star})

	coarse.Tick(0.2, 50*time.Millisecond)
	for range 5 {
		fine.Tick(0.2, 10*time.Millisecond)
	}
	if !approxEqual(coarse.Progress, fine.Progress) {
		t.Errorf("one 50ms tick reached %v, five 10ms ticks %v", coarse.Progress, fine.Progress)
	}
}

func TestAnimatorFromTo(t *testing.T) {
	a := NewAnimator(MultiShape, []Shape{Circle, Star, Hexagon})
	from, to := a.FromTo()
	diff(t, Circle, from)
	diff(t, Star, to)

	for range 4 {
		a.Tick(0.25, nominalFrame)
	}
	from, to = a.FromTo()
	diff(t, Star, from)
	diff(t, Hexagon, to)

	empty := NewAnimator(MultiShape, nil)
	from, to = empty.FromTo()
	diff(t, Circle, from)
	diff(t, Circle, to)
}

func TestAnimatorDistance(t *testing.T) {
	a := NewAnimator(TwoShape, []Shape{Triangle, Circle})
	a.Tick(0.5, nominalFrame)
	want := MorphedDistance(0, Triangle, Circle, 0.5, TwoShape, DefaultOptions)
	diff(t, want, a.Distance(0, DefaultOptions))
}

func TestAnimatorZeroValue(t *testing.T) {
	// The zero value is usable in TwoShape mode: the first tick assumes a
	// forward direction.
	var a Animator
	a.Tick(0.25, nominalFrame)
	diff(t, 0.25, a.Progress)
}
