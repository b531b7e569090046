// Package radar wires the full pipeline — validation, normalization,
// geometry, path building — into one Chart value.
//
// What:
//
//   - New validates the configuration, runs the data through the validator
//     and normalizer, and precomputes everything that only changes when
//     data or dimensions change: chart frame, grid polygons, spokes,
//     static points and label anchors.
//   - Frame produces the per-tick artifacts: animated point positions and
//     the smooth closed path string, ready for any renderer.
//   - FromSource does the same starting from a data-source adapter.
//
// State model:
//
//	A Chart is immutable after New. There is no update method on purpose —
//	when data or configuration change, build a new Chart; when only the
//	animation advances, call Frame with the new progress. This mirrors the
//	static/animated split in the geometry package: construction pays the
//	trigonometry once, Frame is O(spokes) arithmetic per tick.
//
// Presentation contract:
//
//	Valid is the single gate. An invalid Chart still carries its full
//	diagnostic report (Validation), but exposes no geometry — the
//	presentation layer must show an error or empty state instead of a
//	chart. Warnings never block: a valid Chart may carry advisory
//	diagnostics alongside its corrected data.
package radar
