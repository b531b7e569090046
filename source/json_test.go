package source_test

import (
	"testing"

	"github.com/katalvlaran/radial/source"
	"github.com/katalvlaran/radial/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeJSON_CleanDocument verifies names and numeric values decode
// into raw records, in document order.
func TestDecodeJSON_CleanDocument(t *testing.T) {
	records, err := source.DecodeJSON([]byte(`[
		{"name": "Speed", "value": 4.5},
		{"name": "Power", "value": 3}
	]`))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, validate.Record{Name: "Speed", Value: 4.5}, records[0])
	assert.Equal(t, validate.Record{Name: "Power", Value: 3.0}, records[1])
}

// TestDecodeJSON_PreservesMalformedShapes verifies the adapter passes
// dirty fields through untouched — diagnosing them is the validator's job.
func TestDecodeJSON_PreservesMalformedShapes(t *testing.T) {
	records, err := source.DecodeJSON([]byte(`[
		{"name": 42, "value": "fast"},
		{"value": 1},
		{"name": "C"}
	]`))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 42.0, records[0].Name, "JSON numbers decode as float64 and stay that way")
	assert.Equal(t, "fast", records[0].Value)
	assert.Nil(t, records[1].Name, "missing keys become nil fields")
	assert.Nil(t, records[2].Value)

	// The validator, not the adapter, turns these into taxonomy codes.
	res := validate.Validate(records, validate.DefaultOptions())
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Errors)
}

// TestDecodeJSON_RejectsNonArray verifies the ErrNotArray sentinel for
// top-level objects and scalars.
func TestDecodeJSON_RejectsNonArray(t *testing.T) {
	for _, doc := range []string{`{"name":"A","value":1}`, `42`, `"text"`} {
		_, err := source.DecodeJSON([]byte(doc))
		assert.ErrorIs(t, err, source.ErrNotArray, "doc=%s", doc)
	}
}

// TestDecodeJSON_RejectsInvalidJSON verifies syntax errors surface.
func TestDecodeJSON_RejectsInvalidJSON(t *testing.T) {
	_, err := source.DecodeJSON([]byte(`[{"name": }]`))

	assert.Error(t, err)
}

// TestCheckJSON verifies the schema gate: arrays of objects pass, anything
// else is aggregated under ErrNotArray.
func TestCheckJSON(t *testing.T) {
	assert.NoError(t, source.CheckJSON([]byte(`[]`)))
	assert.NoError(t, source.CheckJSON([]byte(`[{"name":"A","value":1}]`)))
	assert.NoError(t, source.CheckJSON([]byte(`[{"unrelated":true}]`)), "field shapes are the validator's concern")

	assert.ErrorIs(t, source.CheckJSON([]byte(`{"name":"A"}`)), source.ErrNotArray)
	assert.ErrorIs(t, source.CheckJSON([]byte(`[1, 2, 3]`)), source.ErrNotArray, "array items must be objects")
}

// TestJSONSource_StrictMode verifies strict sources fail fast on schema
// violations while lax sources only require decodable arrays.
func TestJSONSource_StrictMode(t *testing.T) {
	badItems := []byte(`["not-an-object"]`)

	_, err := source.NewJSONSource(badItems, true).Records()
	assert.ErrorIs(t, err, source.ErrNotArray)

	_, err = source.NewJSONSource(badItems, false).Records()
	assert.Error(t, err, "decoding a string into an object still fails, later")
}

// TestSlice_Records verifies the trivial in-memory source.
func TestSlice_Records(t *testing.T) {
	s := source.Slice{{Name: "A", Value: 1.0}}
	records, err := s.Records()

	require.NoError(t, err)
	assert.Equal(t, []validate.Record(s), records)
}
