package validate_test

import (
	"testing"

	"github.com/katalvlaran/radial/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_PadsToMinimum covers the spec scenario: two points are
// padded to five, the originals stay first and unchanged, and the padding
// entries are named "Point 3".."Point 5" with value 0.
func TestNormalize_PadsToMinimum(t *testing.T) {
	in := []validate.DataPoint{
		{Name: "A", Value: 1},
		{Name: "B", Value: 2},
	}
	out := validate.Normalize(in, validate.MinChartPoints)

	require.Len(t, out, 5)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
	assert.Equal(t, validate.DataPoint{Name: "Point 3", Value: 0}, out[2])
	assert.Equal(t, validate.DataPoint{Name: "Point 4", Value: 0}, out[3])
	assert.Equal(t, validate.DataPoint{Name: "Point 5", Value: 0}, out[4])
}

// TestNormalize_EnoughPoints verifies datasets at or above the minimum are
// returned untouched.
func TestNormalize_EnoughPoints(t *testing.T) {
	in := []validate.DataPoint{
		{Name: "A", Value: 1}, {Name: "B", Value: 2}, {Name: "C", Value: 3},
		{Name: "D", Value: 4}, {Name: "E", Value: 5}, {Name: "F", Value: 1},
	}
	out := validate.Normalize(in, validate.MinChartPoints)

	assert.Len(t, out, 6)
	assert.Equal(t, in, out)
}

// TestNormalize_HigherMinimum verifies a caller-raised minimum pads past
// five.
func TestNormalize_HigherMinimum(t *testing.T) {
	in := []validate.DataPoint{{Name: "A", Value: 1}}
	out := validate.Normalize(in, 7)

	require.Len(t, out, 7)
	assert.Equal(t, "Point 7", out[6].Name)
}

// TestNormalize_FloorsAtFive verifies the five-point floor holds even when
// the caller asks for less.
func TestNormalize_FloorsAtFive(t *testing.T) {
	out := validate.Normalize([]validate.DataPoint{{Name: "A", Value: 1}}, 3)

	assert.Len(t, out, 5, "polygon stability requires at least five vertices")
}

// TestNormalize_DoesNotMutateInput verifies padding allocates instead of
// growing the caller's slice.
func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := make([]validate.DataPoint, 2, 8)
	in[0] = validate.DataPoint{Name: "A", Value: 1}
	in[1] = validate.DataPoint{Name: "B", Value: 2}

	out := validate.Normalize(in, 5)
	out[0].Name = "mutated"

	assert.Equal(t, "A", in[0].Name, "input must stay untouched")
	assert.Len(t, in, 2)
}
