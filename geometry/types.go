// Package geometry value types and layout constants.
package geometry

import "math"

const (
	// MinSpokes is the smallest spoke count a stable polygon allows.
	MinSpokes = 5

	// DefaultPadding is the margin (in chart units) reserved around the
	// polygon for category labels.
	DefaultPadding = 60.0

	// DefaultGridLevels is the number of concentric reference polygons.
	DefaultGridLevels = 5

	// StartAngle places spoke 0 at 12 o'clock; subsequent spokes advance
	// clockwise in screen coordinates.
	StartAngle = -math.Pi / 2
)

// Dimensions describes the derived chart frame. Never mutated after
// creation; recompute it whenever width, height or spoke count change.
type Dimensions struct {
	// CenterX, CenterY locate the chart center.
	CenterX, CenterY float64

	// Radius is the drawable radius after label padding.
	Radius float64

	// SpokeCount is the number of radial axes, always ≥ MinSpokes.
	SpokeCount int

	// AngleStep is the angle between adjacent spokes: 2π / SpokeCount.
	AngleStep float64
}

// Point is one 2D position in chart coordinates.
type Point struct {
	X, Y float64
}

// SpokeLine is one radial axis from the chart center to the perimeter.
type SpokeLine struct {
	X1, Y1, X2, Y2 float64
}

// StaticPoint holds the per-data-point quantities that do not change
// between animation ticks: the spoke angle, its precomputed cosine and
// sine, the radius the point reaches at full progress, and the center the
// animation collapses to. Computing these once per data or dimension
// change is what keeps the per-tick cost trigonometry-free.
type StaticPoint struct {
	Angle     float64
	MaxRadius float64
	Cos, Sin  float64
	CenterX   float64
	CenterY   float64
}
