package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/katalvlaran/radial/validate"
)

// recordSchema is the structural contract of a JSON data document: an
// array of objects. Field types are deliberately unconstrained — coercing
// and diagnosing name/value shapes is the validator's job, not the
// transport's.
const recordSchema = `{
	"type": "array",
	"items": { "type": "object" }
}`

// JSON record keys.
const (
	keyName  = "name"
	keyValue = "value"
)

// JSONSource decodes a JSON array of {name, value} objects. With strict
// set, the document is checked against the record schema before decoding,
// turning structural breakage into one aggregated error.
type JSONSource struct {
	data   []byte
	strict bool
}

// NewJSONSource wraps a JSON document.
func NewJSONSource(data []byte, strict bool) JSONSource {
	return JSONSource{data: data, strict: strict}
}

// Records implements Source.
func (s JSONSource) Records() ([]validate.Record, error) {
	if s.strict {
		if err := CheckJSON(s.data); err != nil {
			return nil, err
		}
	}

	return DecodeJSON(s.data)
}

// CheckJSON validates a JSON document against the record schema and
// aggregates every structural violation into a single error.
func CheckJSON(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(recordSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("source: schema check: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, re.String())
	}

	return fmt.Errorf("%w: %s", ErrNotArray, strings.Join(msgs, "; "))
}

// DecodeJSON decodes a JSON array of objects into raw records. Missing
// keys become nil fields and wrong-typed fields pass through unchanged;
// only transport-level breakage (not an array, invalid JSON) errors.
func DecodeJSON(data []byte) ([]validate.Record, error) {
	if !startsWithArray(data) {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrNotArray)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}

	records := make([]validate.Record, len(rows))
	for i, row := range rows {
		records[i] = validate.Record{Name: row[keyName], Value: row[keyValue]}
	}

	return records, nil
}

// startsWithArray reports whether the first significant byte opens an array.
func startsWithArray(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")

	return len(trimmed) > 0 && trimmed[0] == '['
}
