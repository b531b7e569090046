// Package radial turns named numeric scores into ready-to-draw radial
// (spider/polygon) chart geometry — validated data, grid polygons, radial
// spokes, animated point positions and one smooth closed curve.
//
// 🚀 What is radial?
//
//	A pure, dependency-light engine that brings together:
//		• Validation: coerce arbitrary (name, value) records into a diagnostic
//		  report (blocking errors vs. advisory warnings) plus corrected data
//		• Normalization: pad every dataset to the 5-vertex minimum a stable
//		  polygon needs
//		• Geometry: chart dimensions, concentric grid levels, spokes, and
//		  per-category static points precomputed once per data change
//		• Animation: per-tick point positions that are linear in progress —
//		  no trigonometry on the hot path
//		• Paths: a single smooth closed cubic-Bezier curve through every point
//
// ✨ Why choose radial?
//
//   - Deterministic – every function is pure; all state lives in your clock
//   - Diagnostic-first – bad data never throws, it is reported and corrected
//   - 60 Hz-friendly – per-tick cost is O(spokes) multiply-adds
//   - Renderer-agnostic – hand the coordinates and path string to SVG,
//     canvas, or anything else that draws
//
// Everything is organized under topic subpackages:
//
//	validate/ — record sanitization, error/warning taxonomy, padding
//	geometry/ — dimensions, grid polygons, spokes, static & animated points
//	svgpath/  — smooth closed curve and straight polygon path strings
//	anim/     — external-clock progress driver and easing functions
//	config/   — chart configuration value object with YAML loading
//	source/   — slice, JSON (schema-checked) and XLSX record adapters
//	radar/    — the facade wiring the full pipeline into a Chart
//	render/   — Renderer contract plus an SVG implementation
//
// Data flow:
//
//	records → validate → normalize → dimensions → static points
//	        → [per tick] animated points → smooth closed path → renderer
//
//	go get github.com/katalvlaran/radial
package radial
