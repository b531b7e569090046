package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/radial/radar"
	"github.com/katalvlaran/radial/svgpath"
)

// ErrInvalidChart indicates the chart's data failed validation; there is
// no geometry to draw. Inspect chart.Validation() for the report.
var ErrInvalidChart = errors.New("render: chart data failed validation")

// Renderer streams one frame of a chart to w. progress is the animation
// progress in [0, 1]; pass 1 for the fully drawn chart.
type Renderer interface {
	Render(w io.Writer, c *radar.Chart, progress float64) error
}

// Style carries the presentation attributes of the SVG renderer. Zero
// values are not usable; start from DefaultStyle and override fields.
type Style struct {
	Background  string
	GridStroke  string
	SpokeStroke string
	DataStroke  string
	DataFill    string
	FillOpacity float64
	PointFill   string
	PointRadius float64
	LabelFill   string
	FontFamily  string
	FontSize    float64
}

// DefaultStyle returns a neutral palette: light grey scaffolding, a
// translucent blue data shape, dark labels.
func DefaultStyle() Style {
	return Style{
		Background:  "#ffffff",
		GridStroke:  "#d0d0d0",
		SpokeStroke: "#d0d0d0",
		DataStroke:  "#3366cc",
		DataFill:    "#3366cc",
		FillOpacity: 0.25,
		PointFill:   "#3366cc",
		PointRadius: 3,
		LabelFill:   "#333333",
		FontFamily:  "sans-serif",
		FontSize:    12,
	}
}

// SVG renders charts as standalone SVG documents.
type SVG struct {
	Style Style
}

// NewSVG returns an SVG renderer with the default style.
func NewSVG() SVG {
	return SVG{Style: DefaultStyle()}
}

// Render implements Renderer. The document layers, bottom to top: grid
// polygons (innermost first), spokes, the smooth data shape, data point
// circles, category labels.
func (r SVG) Render(w io.Writer, c *radar.Chart, progress float64) error {
	if !c.Valid() {
		return ErrInvalidChart
	}

	cfg := c.Config()
	frame := c.Frame(progress)

	var err error
	put := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	put("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		num(cfg.Width), num(cfg.Height), num(cfg.Width), num(cfg.Height))
	put("  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", r.Style.Background)

	for _, polygon := range c.Grid() {
		put("  <path d=\"%s\" fill=\"none\" stroke=\"%s\"/>\n",
			svgpath.PolygonPath(polygon), r.Style.GridStroke)
	}

	for _, s := range c.Spokes() {
		put("  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\"/>\n",
			num(s.X1), num(s.Y1), num(s.X2), num(s.Y2), r.Style.SpokeStroke)
	}

	put("  <path d=\"%s\" fill=\"%s\" fill-opacity=\"%s\" stroke=\"%s\"/>\n",
		frame.Path, r.Style.DataFill, num(r.Style.FillOpacity), r.Style.DataStroke)

	for _, p := range frame.Points {
		put("  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
			num(p.X), num(p.Y), num(r.Style.PointRadius), r.Style.PointFill)
	}

	for _, l := range c.Labels() {
		put("  <text x=\"%s\" y=\"%s\" text-anchor=\"%s\" fill=\"%s\" font-family=\"%s\" font-size=\"%s\">%s</text>\n",
			num(l.X), num(l.Y), l.Anchor, r.Style.LabelFill,
			r.Style.FontFamily, num(r.Style.FontSize), escape(l.Text))
	}

	put("</svg>\n")
	if err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}

	return nil
}

// num formats a coordinate or size without trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// escape makes arbitrary category names safe inside an XML text node.
func escape(s string) string {
	var buf bytes.Buffer
	// xml.EscapeText only fails on writer errors; a buffer has none.
	_ = xml.EscapeText(&buf, []byte(s))

	return buf.String()
}
