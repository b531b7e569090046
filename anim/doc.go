// Package anim is the external-clock collaborator for the geometry engine:
// it maps wall-clock time to an eased animation progress value in [0, 1].
//
// What:
//
//   - Driver converts "now minus start over duration" into a clamped,
//     monotone progress scalar, optionally shaped by an easing function.
//   - Linear, EaseOutCubic and EaseInOutQuad cover the usual entrance
//     curves; EasingByName resolves configuration strings.
//
// Why:
//
//	The geometry engine owns no timer and performs no I/O (its per-tick
//	cost is pure arithmetic); something has to decide what "progress"
//	means. Keeping that policy here, with the caller supplying now on each
//	tick, leaves the engine deterministic and trivially testable.
//
// Contract:
//
//   - Driver.Progress is non-decreasing in now, exactly 0 before the start
//     instant and exactly 1 from start+Duration onward.
//   - Cancellation is the scheduler's job: stop calling Progress; the
//     driver holds no resources to release.
//
// Errors:
//
//   - ErrUnknownEasing — EasingByName received a name outside the registry.
package anim
