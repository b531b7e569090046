// Package validate core types: raw records, data points, the diagnostic
// taxonomy, and validation options.
package validate

// Code identifies one entry of the diagnostic taxonomy.
// Blocking codes invalidate the dataset; advisory codes never do.
type Code string

// Blocking codes.
const (
	// CodeMissingData indicates the record slice itself was absent (nil).
	CodeMissingData Code = "MISSING_DATA"
	// CodeEmptyValues indicates no records were supplied, or none survived processing.
	CodeEmptyValues Code = "EMPTY_VALUES"
	// CodeInvalidDataType indicates a name or value of an unusable type; a
	// default is substituted so processing can continue.
	CodeInvalidDataType Code = "INVALID_DATA_TYPE"
	// CodeDuplicateNames indicates a case-insensitive name collision,
	// reported at the later of the two indices.
	CodeDuplicateNames Code = "DUPLICATE_NAMES"
	// CodeInvalidRange is reserved: out-of-range values are clamped and
	// reported as CodeDataClamped instead of erroring.
	CodeInvalidRange Code = "INVALID_RANGE"
)

// Advisory codes.
const (
	// CodeDataClamped indicates a value was constrained to [MinValue, MaxValue].
	CodeDataClamped Code = "DATA_CLAMPED"
	// CodeEmptyName indicates a blank name was replaced with a default.
	CodeEmptyName Code = "EMPTY_NAME"
	// CodeSpecialCharacters indicates a name contains markup-sensitive characters.
	CodeSpecialCharacters Code = "SPECIAL_CHARACTERS"
	// CodeLongName indicates a name longer than MaxNameLength runes.
	CodeLongName Code = "LONG_NAME"
)

const (
	// MinChartPoints is the minimum vertex count of a stable polygon.
	MinChartPoints = 5

	// MaxNameLength is the longest category name that renders without truncation.
	MaxNameLength = 20

	// DefaultMaxValue is the upper bound of the default score scale.
	DefaultMaxValue = 5.0

	// DefaultMinValue is the lower bound of the default score scale.
	DefaultMinValue = 0.0

	// DatasetIndex marks an Issue that applies to the dataset as a whole
	// rather than to one record.
	DatasetIndex = -1
)

// File-local vocabulary (no magic strings in the scan logic).
const (
	specialChars      = `<>'"&`
	defaultNamePrefix = "Category "
	paddingNamePrefix = "Point "
	fieldName         = "name"
	fieldValue        = "value"
)

// Record is one raw input pair as delivered by a data-source adapter.
// Neither field's type nor presence is guaranteed; Validate is responsible
// for coercion and rejection, so the dynamic shape of external data never
// leaks past this package.
type Record struct {
	Name  any
	Value any
}

// DataPoint is one sanitized category/score pair.
type DataPoint struct {
	Name  string
	Value float64
}

// Issue is a single diagnostic: one taxonomy code, a human-readable
// message, and the record it refers to. Field is "name" or "value" for
// per-field issues and empty otherwise; Index is DatasetIndex for issues
// about the dataset as a whole.
type Issue struct {
	Code    Code
	Message string
	Field   string
	Index   int
}

// Result is the full outcome of one validation pass.
//
// Valid is the single gate controlling whether Points may be used:
// Points is non-nil if and only if Valid. Warnings never affect Valid.
type Result struct {
	Valid    bool
	Errors   []Issue
	Warnings []Issue
	Points   []DataPoint
}

// Options configures one validation pass.
//
// MaxValue must exceed MinValue; enforcing MaxValue > 0 before geometry
// runs is the configuration layer's job (see config.Validate), not this
// package's.
type Options struct {
	// MaxValue is the inclusive upper bound values are clamped to.
	MaxValue float64
	// MinValue is the inclusive lower bound values are clamped to.
	MinValue float64
}

// DefaultOptions returns the standard 0..5 score scale.
func DefaultOptions() Options {
	return Options{
		MaxValue: DefaultMaxValue,
		MinValue: DefaultMinValue,
	}
}
