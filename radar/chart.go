package radar

import (
	"math"
	"time"

	"github.com/katalvlaran/radial/anim"
	"github.com/katalvlaran/radial/config"
	"github.com/katalvlaran/radial/geometry"
	"github.com/katalvlaran/radial/source"
	"github.com/katalvlaran/radial/svgpath"
	"github.com/katalvlaran/radial/validate"
)

// labelOffset pushes category labels past the outer grid ring, into the
// padding the frame reserves.
const labelOffset = 20.0

// anchorEpsilon is the |cos| band around the vertical where a label is
// centered instead of flowing left or right.
const anchorEpsilon = 0.1

// Text anchor values, matching the SVG text-anchor attribute.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Label is a positioned category name. Anchor tells the renderer which way
// the text flows from (X, Y): names on the right half of the chart flow
// right, names on the left half flow left, names at 12 and 6 o'clock are
// centered.
type Label struct {
	Text   string
	X, Y   float64
	Anchor string
}

// Frame is everything a renderer needs for one animation tick: the data
// point positions at the tick's progress and the smooth closed path
// through them.
type Frame struct {
	Points []geometry.Point
	Path   string
}

// Chart is a fully prepared radial chart: validated, normalized data plus
// every quantity that survives between animation ticks. Immutable after
// New; build a new Chart when data or configuration change.
type Chart struct {
	cfg    config.Config
	result validate.Result
	points []validate.DataPoint
	dims   geometry.Dimensions
	grid   [][]geometry.Point
	spokes []geometry.SpokeLine
	static []geometry.StaticPoint
	labels []Label
}

// New builds a Chart from raw records. The error return covers
// configuration faults only — data faults never error. A Chart whose data
// failed validation is still returned, carrying the diagnostic report;
// check Valid before asking for geometry.
func New(cfg config.Config, records []validate.Record) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Chart{cfg: cfg}
	c.result = validate.Validate(records, cfg.ValidateOptions())
	if !c.result.Valid {
		return c, nil
	}

	c.points = validate.Normalize(c.result.Points, cfg.MinSpokes)
	c.dims = geometry.ComputeDimensions(cfg.Width, cfg.Height, len(c.points), cfg.Padding)
	c.grid = geometry.GridPolygons(c.dims, cfg.GridLevels)
	c.spokes = geometry.Spokes(c.dims)
	c.static = geometry.NewStaticPoints(c.dims, c.points, cfg.MaxValue)
	c.labels = buildLabels(c.dims, c.points)

	return c, nil
}

// FromSource builds a Chart from a data-source adapter. Transport errors
// (unreadable files, non-array JSON) surface here; content errors land in
// the validation report as usual.
func FromSource(cfg config.Config, src source.Source) (*Chart, error) {
	records, err := src.Records()
	if err != nil {
		return nil, err
	}

	return New(cfg, records)
}

// Valid reports whether the data passed validation. Every geometry
// accessor returns zero values on an invalid chart.
func (c *Chart) Valid() bool { return c.result.Valid }

// Validation returns the full diagnostic report, valid or not.
func (c *Chart) Validation() validate.Result { return c.result }

// Config returns the configuration the chart was built with.
func (c *Chart) Config() config.Config { return c.cfg }

// Points returns the normalized data points, padded to the spoke floor.
func (c *Chart) Points() []validate.DataPoint { return c.points }

// Dimensions returns the derived chart frame.
func (c *Chart) Dimensions() geometry.Dimensions { return c.dims }

// Grid returns the concentric reference polygons, innermost first.
func (c *Chart) Grid() [][]geometry.Point { return c.grid }

// Spokes returns the radial axes, one per data point.
func (c *Chart) Spokes() []geometry.SpokeLine { return c.spokes }

// StaticPoints returns the precomputed per-point animation quantities.
func (c *Chart) StaticPoints() []geometry.StaticPoint { return c.static }

// Labels returns the positioned category names.
func (c *Chart) Labels() []Label { return c.labels }

// Frame renders the per-tick artifacts at the given animation progress:
// point positions and the smooth closed path through them. Progress 1
// yields the fully drawn chart; an invalid chart yields an empty Frame.
//
// Frame allocates; a per-tick caller should hold its own point buffer and
// use FramePoints plus svgpath directly.
func (c *Chart) Frame(progress float64) Frame {
	if !c.result.Valid {
		return Frame{}
	}

	pts := geometry.AppendAnimatedPoints(make([]geometry.Point, 0, len(c.static)), c.static, progress)

	return Frame{
		Points: pts,
		Path:   svgpath.SmoothClosedPath(pts, c.cfg.ControlPointDistance),
	}
}

// FramePoints appends the animated point positions at progress to dst and
// returns it. Reusing the previous tick's slice (truncated with dst[:0])
// keeps the hot path allocation-free.
func (c *Chart) FramePoints(dst []geometry.Point, progress float64) []geometry.Point {
	return geometry.AppendAnimatedPoints(dst, c.static, progress)
}

// Driver builds the entrance-animation clock from the chart's duration and
// easing, starting at start. The easing name was checked during
// configuration validation, so the lookup cannot fail here.
func (c *Chart) Driver(start time.Time) anim.Driver {
	easing, _ := anim.EasingByName(c.cfg.Easing)

	return anim.NewDriver(start, c.cfg.Duration.Std(), easing)
}

// buildLabels places one label per spoke at labelOffset past the drawable
// radius, anchored by which half of the chart the spoke points into.
func buildLabels(d geometry.Dimensions, points []validate.DataPoint) []Label {
	r := d.Radius + labelOffset
	labels := make([]Label, len(points))
	for i, p := range points {
		angle := geometry.StartAngle + float64(i)*d.AngleStep
		cos, sin := math.Cos(angle), math.Sin(angle)
		labels[i] = Label{
			Text:   p.Name,
			X:      d.CenterX + r*cos,
			Y:      d.CenterY + r*sin,
			Anchor: anchorFor(cos),
		}
	}

	return labels
}

// anchorFor maps the spoke direction to an SVG text anchor.
func anchorFor(cos float64) string {
	switch {
	case cos > -anchorEpsilon && cos < anchorEpsilon:
		return AnchorMiddle
	case cos > 0:
		return AnchorStart
	default:
		return AnchorEnd
	}
}
