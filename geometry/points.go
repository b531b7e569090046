package geometry

import (
	"math"

	"github.com/katalvlaran/radial/validate"
)

// NewStaticPoint precomputes the animation-independent quantities of the
// data point on spoke index: its angle, one cos and one sin, and the radius
// it reaches at full progress (radius scaled by value/maxValue). value is
// clamped to [0, maxValue] as a safety net; validated data is already in
// range.
//
// Precondition: maxValue > 0. The configuration layer rejects non-positive
// maxValue before geometry runs; it is not re-checked here.
//
// Complexity: O(1), the only trigonometric calls on the data path.
func NewStaticPoint(d Dimensions, value, maxValue float64, index int) StaticPoint {
	angle := spokeAngle(d, index)
	clamped := validate.Clamp(value, 0, maxValue)

	return StaticPoint{
		Angle:     angle,
		MaxRadius: d.Radius * clamped / maxValue,
		Cos:       math.Cos(angle),
		Sin:       math.Sin(angle),
		CenterX:   d.CenterX,
		CenterY:   d.CenterY,
	}
}

// NewStaticPoints precomputes one StaticPoint per data point, in order.
// Call it once per data or dimension change and reuse the result across
// every animation tick.
//
// Complexity: O(n) with n cos/sin pairs.
func NewStaticPoints(d Dimensions, points []validate.DataPoint, maxValue float64) []StaticPoint {
	out := make([]StaticPoint, len(points))
	for i, p := range points {
		out[i] = NewStaticPoint(d, p.Value, maxValue, i)
	}

	return out
}

// AnimatedPoint positions a static point at the given animation progress.
// progress 0 collapses the point to the chart center, progress 1 reaches
// the full-value radius. The position is linear in progress, so values
// outside [0,1] extrapolate along the spoke; clamping is the animation
// driver's job, not this function's.
//
// Complexity: O(1), no trigonometric calls.
func AnimatedPoint(sp StaticPoint, progress float64) Point {
	r := sp.MaxRadius * progress

	return Point{
		X: sp.CenterX + r*sp.Cos,
		Y: sp.CenterY + r*sp.Sin,
	}
}

// AppendAnimatedPoints appends the animated position of every static point
// to dst and returns it, reusing dst's capacity. Passing the previous
// tick's slice (truncated with dst[:0]) makes the per-tick path
// allocation-free, which is what a 60 Hz caller wants.
//
// Complexity: O(n) multiply-adds.
func AppendAnimatedPoints(dst []Point, sps []StaticPoint, progress float64) []Point {
	for _, sp := range sps {
		dst = append(dst, AnimatedPoint(sp, progress))
	}

	return dst
}
