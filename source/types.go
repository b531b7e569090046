// Package source adapter contract and sentinel errors.
package source

import (
	"errors"

	"github.com/katalvlaran/radial/validate"
)

// ErrNotArray indicates a JSON document whose top level is not an array.
var ErrNotArray = errors.New("source: json document must be an array of records")

// Source yields one batch of raw records for a validation pass. Adapters
// surface transport faults as errors; data-quality faults travel through
// as raw record fields for the validator to diagnose.
type Source interface {
	Records() ([]validate.Record, error)
}

// Slice is the in-memory Source for callers that already hold records.
type Slice []validate.Record

// Records implements Source.
func (s Slice) Records() ([]validate.Record, error) {
	return s, nil
}
