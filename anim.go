package radial

import "time"

// nominalFrame is the reference frame interval that ticks are normalized
// against, so that progress advances at the same rate regardless of the
// caller's actual frame rate.
const nominalFrame = time.Second / 60

// Animator advances morph progress over wall-clock time.
//
// In [TwoShape] mode progress bounces between 0 and 1 indefinitely. In
// [MultiShape] mode progress only increases; whenever it completes, it resets
// to 0 and the active pair of shapes rotates one step through Shapes.
//
// An Animator owns mutable state and must be ticked from a single goroutine,
// typically the animation loop. The pure sampling functions it wraps carry no
// state and remain safe for concurrent use.
type Animator struct {
	Mode MorphMode
	// Morph progress in [0, 1].
	Progress float64
	// The cyclic shape list used in MultiShape mode. TwoShape mode uses only
	// the first two entries.
	Shapes []Shape
	// Indices into Shapes of the pair being morphed between.
	Current, Next int

	direction float64
}

// NewAnimator returns an animator at progress 0, morphing from the first
// shape of the list toward the second.
func NewAnimator(mode MorphMode, shapes []Shape) *Animator {
	a := &Animator{Mode: mode, Shapes: shapes, direction: 1}
	if len(shapes) > 1 {
		a.Next = 1
	}
	return a
}

// Tick advances progress by speed, scaled by the elapsed time since the last
// tick relative to the nominal frame interval. A speed of s advances progress
// by s per 60th of a second, independent of how often Tick is called.
func (a *Animator) Tick(speed float64, elapsed time.Duration) {
	if a.direction == 0 {
		// Zero value of Animator, never initialized by NewAnimator.
		a.direction = 1
	}
	delta := speed * elapsed.Seconds() / nominalFrame.Seconds()
	switch a.Mode {
	case TwoShape:
		a.Progress += a.direction * delta
		if a.Progress >= 1 {
			a.Progress = 1
			a.direction = -1
		} else if a.Progress <= 0 {
			a.Progress = 0
			a.direction = 1
		}
	case MultiShape:
		a.Progress += delta
		if a.Progress >= 1 {
			a.Progress = 0
			// With fewer than two shapes there is no pair to cycle to.
			if len(a.Shapes) >= 2 {
				a.Current = a.Next
				a.Next = (a.Next + 1) % len(a.Shapes)
			}
		}
	}
}

// FromTo returns the pair of shapes the animator is currently morphing
// between. An empty shape list yields circles.
func (a *Animator) FromTo() (from, to Shape) {
	n := len(a.Shapes)
	if n == 0 {
		return Circle, Circle
	}
	return a.Shapes[a.Current%n], a.Shapes[a.Next%n]
}

// Distance returns the morphed distance at an angle for the animator's
// current pair and progress.
func (a *Animator) Distance(angle float64, opts Options) float64 {
	from, to := a.FromTo()
	return MorphedDistance(angle, from, to, a.Progress, a.Mode, opts)
}
