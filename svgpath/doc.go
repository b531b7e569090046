// Package svgpath serializes point lists into SVG path-data strings.
//
// What:
//
//   - SmoothClosedPath threads one continuous closed cubic-Bezier curve
//     through every input point, in order, wrapping the last point back to
//     the first. Control points sit a configurable fraction of each
//     segment's delta away from its endpoints, which rounds the polygon's
//     corners without overshooting.
//   - PolygonPath emits the straight-edged closed path used for grid levels.
//
// Why:
//
//	The engine is renderer-agnostic; the path mini-language ("M/C/L/Z") is
//	the one interchange format SVG and canvas Path2D both accept verbatim.
//
// Contract:
//
//   - Empty input ⇒ empty string; never an error, never a panic.
//   - Non-empty input ⇒ the string starts with a move to points[0] and ends
//     with the close marker "Z".
//   - Coordinates are formatted with two decimal places, enough for
//     sub-pixel accuracy on any practical surface.
//
// Complexity: O(n) time and memory per call.
package svgpath
