// Package geometry computes every 2D coordinate a radial chart needs:
// chart dimensions, concentric grid polygons, radial spokes, and animated
// data-point positions.
//
// What:
//
//   - ComputeDimensions derives the chart center, drawable radius, spoke
//     count (floored at MinSpokes) and the angle step between spokes.
//   - GridPolygons and Spokes produce the static reference scaffolding.
//   - NewStaticPoint precomputes a data point's angle, trigonometry and
//     full-value radius once per data or dimension change.
//   - AnimatedPoint scales a static point by an animation progress value —
//     a pure multiply-add, so the 60 Hz hot path never calls cos or sin.
//
// Orientation:
//
//	Spoke 0 points to 12 o'clock (StartAngle = -π/2) and angles increase
//	clockwise, matching screen coordinates where y grows downward.
//
// Contract:
//
//   - Every function is pure, deterministic, and total given validated
//     input: no errors, no panics, no logging.
//   - This package performs no input validation of its own — it trusts that
//     validate has produced finite, in-range values and that the
//     configuration layer rejected maxValue ≤ 0 before geometry runs.
//
// Complexity:
//
//   - ComputeDimensions: O(1).
//   - GridPolygons: O(levels × spokes). Spokes: O(spokes).
//   - NewStaticPoint: O(1) with one cos and one sin.
//   - AnimatedPoint / AppendAnimatedPoints: O(1) / O(spokes) arithmetic,
//     zero trigonometric calls.
package geometry
