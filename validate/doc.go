// Package validate sanitizes raw (name, value) records into chart-ready
// data points plus a structured diagnostic report.
//
// What:
//
//   - Validate coerces arbitrary, possibly malformed records into DataPoints,
//     collecting blocking errors and advisory warnings along the way.
//   - Corrections are applied in place of rejections wherever possible:
//     non-string names become "Category {n}", unusable values become 0,
//     out-of-range values are clamped with a DATA_CLAMPED warning.
//   - Normalize pads a validated dataset up to the 5-point minimum a
//     visually stable polygon needs.
//
// Why:
//
//   - Radar charts degrade badly on dirty input: NaN radii, duplicate axes,
//     degenerate polygons. Fixing data at the boundary keeps every
//     downstream geometry function total.
//   - Maximal diagnostic recovery: one bad point never hides the report for
//     the rest of the dataset.
//
// Taxonomy:
//
//	Blocking (invalidate the dataset):
//	  MISSING_DATA, EMPTY_VALUES, INVALID_DATA_TYPE, DUPLICATE_NAMES,
//	  INVALID_RANGE (reserved; clamping auto-corrects instead of erroring)
//	Advisory (never block rendering):
//	  DATA_CLAMPED, EMPTY_NAME, SPECIAL_CHARACTERS, LONG_NAME
//
// Contract:
//
//   - Validate never returns a Go error and never panics: every issue is a
//     value in Result.Errors or Result.Warnings.
//   - Result.Points is non-nil if and only if Result.Valid.
//   - Input order is preserved; padding points are appended at the end.
//   - Pure and deterministic: no globals, no logging, no side effects.
//
// Complexity:
//
//   - Validate:  O(n) time, O(n) memory (n = number of records).
//   - Normalize: O(n) time, O(n) memory.
package validate
