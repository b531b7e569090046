package anim

import "time"

// Driver maps wall-clock instants to eased progress values. It is an
// immutable value: construct one per entrance animation and query it from
// the render loop with the current time. The driver owns no timer and
// never blocks — the scheduler decides when (and whether) to tick.
type Driver struct {
	start    time.Time
	duration time.Duration
	easing   Easing
}

// NewDriver starts an animation at start. Non-positive durations fall back
// to DefaultDuration; a nil easing falls back to Linear.
func NewDriver(start time.Time, duration time.Duration, easing Easing) Driver {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == nil {
		easing = Linear
	}

	return Driver{start: start, duration: duration, easing: easing}
}

// Progress returns the eased progress at now: exactly 0 before the start
// instant, exactly 1 from start+duration onward, non-decreasing in
// between. The result is always inside [0, 1] — callers can hand it to
// geometry.AnimatedPoint without further clamping.
func (d Driver) Progress(now time.Time) float64 {
	elapsed := now.Sub(d.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= d.duration {
		return 1
	}

	return d.easing(Clamp01(float64(elapsed) / float64(d.duration)))
}

// Done reports whether the animation has reached full progress at now.
func (d Driver) Done(now time.Time) bool {
	return now.Sub(d.start) >= d.duration
}
