package svgpath

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/radial/geometry"
)

// DefaultControlPointDistance is the fraction of each segment's delta the
// Bezier control points sit from the segment endpoints. 0.15 gives gently
// rounded corners; 0 degenerates to straight edges.
const DefaultControlPointDistance = 0.15

// coordDecimals keeps path strings compact at sub-pixel accuracy.
const coordDecimals = 2

// SmoothClosedPath builds one closed, continuous cubic-Bezier curve that
// touches every input point exactly once, in input order.
//
// For each consecutive pair (current, next), wrapping the last point back
// to points[0]:
//
//	delta = next − current
//	cp1   = current + delta·controlPointDistance
//	cp2   = next    − delta·controlPointDistance
//
// and a "C cp1 cp2 next" segment is emitted; "Z" closes the path after the
// wrap-around segment. Empty input returns "".
//
// Complexity: O(n).
func SmoothClosedPath(points []geometry.Point, controlPointDistance float64) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, points[0])

	for i := range points {
		current := points[i]
		next := points[(i+1)%len(points)]

		dx := next.X - current.X
		dy := next.Y - current.Y
		cp1 := geometry.Point{X: current.X + dx*controlPointDistance, Y: current.Y + dy*controlPointDistance}
		cp2 := geometry.Point{X: next.X - dx*controlPointDistance, Y: next.Y - dy*controlPointDistance}

		b.WriteString(" C ")
		writePoint(&b, cp1)
		b.WriteByte(' ')
		writePoint(&b, cp2)
		b.WriteByte(' ')
		writePoint(&b, next)
	}
	b.WriteString(" Z")

	return b.String()
}

// PolygonPath builds the straight-edged closed path through points, in
// order. Empty input returns "".
//
// Complexity: O(n).
func PolygonPath(points []geometry.Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, points[0])
	for _, p := range points[1:] {
		b.WriteString(" L ")
		writePoint(&b, p)
	}
	b.WriteString(" Z")

	return b.String()
}

// writePoint appends "x,y" with fixed decimal formatting.
func writePoint(b *strings.Builder, p geometry.Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', coordDecimals, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', coordDecimals, 64))
}
