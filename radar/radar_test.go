package radar_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/radial/config"
	"github.com/katalvlaran/radial/geometry"
	"github.com/katalvlaran/radial/radar"
	"github.com/katalvlaran/radial/source"
	"github.com/katalvlaran/radial/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiveRecords is a clean dataset at the five-point floor.
func fiveRecords() []validate.Record {
	return []validate.Record{
		{Name: "Speed", Value: 4.0},
		{Name: "Power", Value: 3.0},
		{Name: "Agility", Value: 5.0},
		{Name: "Stamina", Value: 2.0},
		{Name: "Focus", Value: 1.0},
	}
}

// TestNew_ValidData verifies a clean build: valid, precomputed geometry
// sized to the data, no diagnostics.
func TestNew_ValidData(t *testing.T) {
	c, err := radar.New(config.Default(), fiveRecords())

	require.NoError(t, err)
	require.True(t, c.Valid())
	assert.Empty(t, c.Validation().Errors)
	assert.Empty(t, c.Validation().Warnings)

	assert.Len(t, c.Points(), 5)
	assert.Equal(t, 5, c.Dimensions().SpokeCount)
	assert.Len(t, c.Grid(), config.Default().GridLevels)
	assert.Len(t, c.Spokes(), 5)
	assert.Len(t, c.StaticPoints(), 5)
	assert.Len(t, c.Labels(), 5)
}

// TestNew_ConfigFault verifies configuration faults error instead of
// producing a chart.
func TestNew_ConfigFault(t *testing.T) {
	cfg := config.Default()
	cfg.MaxValue = 0

	c, err := radar.New(cfg, fiveRecords())

	assert.ErrorIs(t, err, config.ErrNonPositiveMaxValue)
	assert.Nil(t, c)
}

// TestNew_InvalidData verifies data faults never error: the chart comes
// back invalid, carrying the report, with no geometry.
func TestNew_InvalidData(t *testing.T) {
	c, err := radar.New(config.Default(), nil)

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.False(t, c.Valid())
	require.NotEmpty(t, c.Validation().Errors)
	assert.Equal(t, validate.CodeMissingData, c.Validation().Errors[0].Code)

	assert.Nil(t, c.Points())
	assert.Empty(t, c.Grid())
	assert.Empty(t, c.Spokes())
	assert.Equal(t, radar.Frame{}, c.Frame(1))
}

// TestNew_PadsSparseData verifies datasets below the spoke floor grow
// synthetic points before geometry runs.
func TestNew_PadsSparseData(t *testing.T) {
	c, err := radar.New(config.Default(), []validate.Record{
		{Name: "A", Value: 1.0},
		{Name: "B", Value: 2.0},
	})

	require.NoError(t, err)
	require.True(t, c.Valid())
	require.Len(t, c.Points(), 5)
	assert.Equal(t, "Point 3", c.Points()[2].Name)
	assert.Equal(t, 5, c.Dimensions().SpokeCount)
}

// TestFrame_Progress verifies progress 0 collapses every point to the
// center and progress 1 reaches the static radii.
func TestFrame_Progress(t *testing.T) {
	c, err := radar.New(config.Default(), fiveRecords())
	require.NoError(t, err)

	d := c.Dimensions()
	zero := c.Frame(0)
	require.Len(t, zero.Points, 5)
	for _, p := range zero.Points {
		assert.InDelta(t, d.CenterX, p.X, 1e-9)
		assert.InDelta(t, d.CenterY, p.Y, 1e-9)
	}

	full := c.Frame(1)
	// Agility holds the maximum score, so its point sits on the perimeter.
	agility := full.Points[2]
	dist := math.Hypot(agility.X-d.CenterX, agility.Y-d.CenterY)
	assert.InDelta(t, d.Radius, dist, 1e-9)

	assert.NotEmpty(t, full.Path)
	assert.Equal(t, byte('M'), full.Path[0])
}

// TestFramePoints_ReusesBuffer verifies the hot-path variant fills the
// caller's buffer without reallocating.
func TestFramePoints_ReusesBuffer(t *testing.T) {
	c, err := radar.New(config.Default(), fiveRecords())
	require.NoError(t, err)

	buf := make([]geometry.Point, 0, 5)
	buf = c.FramePoints(buf, 0.5)
	require.Len(t, buf, 5)

	again := c.FramePoints(buf[:0], 0.5)
	assert.Same(t, &buf[0], &again[0], "buffer capacity must be reused")
	assert.Equal(t, c.Frame(0.5).Points, again)
}

// TestLabels_Placement verifies label anchoring: 12 o'clock is centered,
// right-half spokes flow right, left-half spokes flow left, and every
// label sits outside the drawable radius.
func TestLabels_Placement(t *testing.T) {
	c, err := radar.New(config.Default(), fiveRecords())
	require.NoError(t, err)

	d := c.Dimensions()
	labels := c.Labels()
	require.Len(t, labels, 5)

	assert.Equal(t, radar.AnchorMiddle, labels[0].Anchor)
	assert.Equal(t, "Speed", labels[0].Text)
	assert.InDelta(t, d.CenterX, labels[0].X, 1e-9)
	assert.Less(t, labels[0].Y, d.CenterY-d.Radius, "12 o'clock label sits above the perimeter")

	assert.Equal(t, radar.AnchorStart, labels[1].Anchor, "upper right")
	assert.Equal(t, radar.AnchorStart, labels[2].Anchor, "lower right")
	assert.Equal(t, radar.AnchorEnd, labels[3].Anchor, "lower left")
	assert.Equal(t, radar.AnchorEnd, labels[4].Anchor, "upper left")

	for i, l := range labels {
		dist := math.Hypot(l.X-d.CenterX, l.Y-d.CenterY)
		assert.Greater(t, dist, d.Radius, "label %d inside the polygon", i)
	}
}

// TestDriver verifies the chart-derived clock honors duration and easing.
func TestDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Duration = config.Duration(1 * time.Second)

	c, err := radar.New(cfg, fiveRecords())
	require.NoError(t, err)

	start := time.Unix(0, 0)
	drv := c.Driver(start)

	assert.Equal(t, 0.0, drv.Progress(start))
	assert.InDelta(t, 0.5, drv.Progress(start.Add(500*time.Millisecond)), 1e-9)
	assert.Equal(t, 1.0, drv.Progress(start.Add(2*time.Second)))
	assert.True(t, drv.Done(start.Add(time.Second)))
}

// TestFromSource verifies the source path end to end, including transport
// error propagation.
func TestFromSource(t *testing.T) {
	c, err := radar.FromSource(config.Default(), source.NewJSONSource([]byte(`[
		{"name": "Speed", "value": 4},
		{"name": "Power", "value": 3}
	]`), true))

	require.NoError(t, err)
	assert.True(t, c.Valid())
	assert.Len(t, c.Points(), 5, "sparse source data still pads to the floor")

	_, err = radar.FromSource(config.Default(), source.NewJSONSource([]byte(`{"not":"array"}`), true))
	assert.ErrorIs(t, err, source.ErrNotArray)
}

// TestChart_WarningsDoNotBlock verifies advisory diagnostics leave the
// chart valid and geometry available.
func TestChart_WarningsDoNotBlock(t *testing.T) {
	records := fiveRecords()
	records[0].Value = 99.0 // clamps, warns

	c, err := radar.New(config.Default(), records)

	require.NoError(t, err)
	assert.True(t, c.Valid())
	require.NotEmpty(t, c.Validation().Warnings)
	assert.Equal(t, validate.CodeDataClamped, c.Validation().Warnings[0].Code)
	assert.Len(t, c.Frame(1).Points, 5)
}
