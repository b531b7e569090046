// Package render turns a prepared chart into an output document.
//
// What:
//
//   - Renderer is the output contract: stream one frame of a chart, at a
//     given animation progress, to a writer.
//   - SVG is the built-in implementation. It emits a standalone SVG
//     document: concentric grid polygons, radial spokes, the smooth data
//     curve, one circle per data point, and anchored category labels.
//
// The renderer draws; it never computes. Every coordinate, path string and
// label anchor comes precomputed from the chart — rendering the same chart
// at the same progress twice produces byte-identical output. Category
// names are XML-escaped on the way out, so markup-sensitive characters the
// validator merely warned about cannot break the document.
//
// Errors: ErrInvalidChart when the chart's data failed validation; any
// write error from the destination is passed through wrapped.
package render
