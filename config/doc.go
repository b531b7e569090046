// Package config is the configuration collaborator of the radial engine:
// one explicit, immutable value object instead of ambient globals or
// host-environment flags.
//
// What:
//
//   - Config carries every tunable the pipeline consumes: surface size,
//     score scale, grid levels, spoke minimum, label padding, curve
//     smoothing, and the entrance-animation duration and easing.
//   - Default returns the documented defaults; Parse overlays a YAML
//     document on top of them, so absent keys keep their defaults.
//   - Validate rejects configurations the geometry engine must never see —
//     most importantly a non-positive MaxValue, which would otherwise
//     divide radii into Inf/NaN coordinates.
//
// Errors:
//
//   - ErrNonPositiveSize     — width or height ≤ 0.
//   - ErrPaddingTooLarge     — padding negative or leaving no drawable radius.
//   - ErrNonPositiveMaxValue — MaxValue ≤ 0 (the geometry precondition).
//   - ErrNegativeMinValue    — MinValue < 0.
//   - ErrMinAboveMax         — MinValue ≥ MaxValue.
//   - ErrBadGridLevels       — fewer than one grid level.
//   - ErrBadControlDistance  — smoothing outside [0, 0.5].
//   - ErrBadDuration         — negative animation duration.
//   - anim.ErrUnknownEasing  — unrecognized easing name.
package config
