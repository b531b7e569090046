package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validate sanitizes raw records into a Result.
//
// Pipeline per record (processing never aborts early — every record is
// inspected so the report covers the whole dataset):
//
//	name:  non-string        ⇒ INVALID_DATA_TYPE error, "Category {n}" substituted
//	       blank             ⇒ EMPTY_NAME warning, same substitution
//	       case-insensitive duplicate ⇒ DUPLICATE_NAMES error at the later index
//	       longer than MaxNameLength  ⇒ LONG_NAME warning
//	       contains < > ' " &         ⇒ SPECIAL_CHARACTERS warning
//	value: nil or non-numeric or non-finite ⇒ INVALID_DATA_TYPE error, 0 substituted
//	       outside [MinValue, MaxValue]     ⇒ clamped, DATA_CLAMPED warning
//
// Dataset-level rules: a nil slice yields MISSING_DATA, an empty slice
// yields EMPTY_VALUES, and a dataset where no record survived yields a
// final EMPTY_VALUES. Result.Valid requires zero errors and at least one
// processed point; Result.Points is populated only then.
//
// Pure, deterministic, side-effect free; input order is preserved.
//
// Complexity: O(n) time, O(n) memory.
func Validate(records []Record, opts Options) Result {
	if records == nil {
		return Result{
			Errors: []Issue{{
				Code:    CodeMissingData,
				Message: "no data provided: records must be a non-nil slice",
				Index:   DatasetIndex,
			}},
		}
	}
	if len(records) == 0 {
		return Result{
			Errors: []Issue{{
				Code:    CodeEmptyValues,
				Message: "no data provided: records slice is empty",
				Index:   DatasetIndex,
			}},
		}
	}

	var (
		errs      []Issue
		warns     []Issue
		processed = make([]DataPoint, 0, len(records))
		seen      = make(map[string]int, len(records)) // lowered name → first index
	)

	for i, rec := range records {
		name, nameErrs, nameWarns := sanitizeName(rec.Name, i, seen)
		value, valueErrs, valueWarns := sanitizeValue(rec.Value, i, opts)

		errs = append(errs, nameErrs...)
		errs = append(errs, valueErrs...)
		warns = append(warns, nameWarns...)
		warns = append(warns, valueWarns...)

		// Defaults substituted above are always usable, so every record
		// contributes a processed point.
		processed = append(processed, DataPoint{Name: name, Value: value})
	}

	if len(processed) == 0 {
		errs = append(errs, Issue{
			Code:    CodeEmptyValues,
			Message: "no valid points after processing",
			Index:   DatasetIndex,
		})
	}

	res := Result{Errors: errs, Warnings: warns}
	if len(errs) == 0 && len(processed) > 0 {
		res.Valid = true
		res.Points = processed
	}

	return res
}

// sanitizeName coerces one raw name, recording per-field diagnostics and
// claiming the name in seen for case-insensitive duplicate detection.
// The earlier occurrence keeps its name; the later index gets the error.
func sanitizeName(raw any, index int, seen map[string]int) (string, []Issue, []Issue) {
	var (
		errs  []Issue
		warns []Issue
		name  string
	)

	switch s, ok := raw.(string); {
	case !ok:
		name = defaultName(index)
		errs = append(errs, Issue{
			Code:    CodeInvalidDataType,
			Message: fmt.Sprintf("point %d: name must be a string, got %T; substituted %q", index, raw, name),
			Field:   fieldName,
			Index:   index,
		})
	case strings.TrimSpace(s) == "":
		name = defaultName(index)
		warns = append(warns, Issue{
			Code:    CodeEmptyName,
			Message: fmt.Sprintf("point %d: empty name; substituted %q", index, name),
			Field:   fieldName,
			Index:   index,
		})
	default:
		name = s
	}

	key := strings.ToLower(name)
	if first, dup := seen[key]; dup {
		errs = append(errs, Issue{
			Code:    CodeDuplicateNames,
			Message: fmt.Sprintf("point %d: name %q duplicates point %d (names are case-insensitive)", index, name, first),
			Field:   fieldName,
			Index:   index,
		})
	} else {
		seen[key] = index
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		warns = append(warns, Issue{
			Code:    CodeLongName,
			Message: fmt.Sprintf("point %d: name %q exceeds %d characters and may be truncated by the renderer", index, name, MaxNameLength),
			Field:   fieldName,
			Index:   index,
		})
	}
	if strings.ContainsAny(name, specialChars) {
		warns = append(warns, Issue{
			Code:    CodeSpecialCharacters,
			Message: fmt.Sprintf("point %d: name %q contains markup-sensitive characters (%s)", index, name, specialChars),
			Field:   fieldName,
			Index:   index,
		})
	}

	return name, errs, warns
}

// sanitizeValue coerces one raw value to a finite float64 inside
// [opts.MinValue, opts.MaxValue], recording per-field diagnostics.
func sanitizeValue(raw any, index int, opts Options) (float64, []Issue, []Issue) {
	var (
		errs  []Issue
		warns []Issue
	)

	if raw == nil {
		errs = append(errs, Issue{
			Code:    CodeInvalidDataType,
			Message: fmt.Sprintf("point %d: missing value; substituted 0", index),
			Field:   fieldValue,
			Index:   index,
		})

		return 0, errs, warns
	}

	f, ok := toFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		errs = append(errs, Issue{
			Code:    CodeInvalidDataType,
			Message: fmt.Sprintf("point %d: value %v (%T) is not a finite number; substituted 0", index, raw, raw),
			Field:   fieldValue,
			Index:   index,
		})

		return 0, errs, warns
	}

	clamped := Clamp(f, opts.MinValue, opts.MaxValue)
	if clamped != f {
		warns = append(warns, Issue{
			Code: CodeDataClamped,
			Message: fmt.Sprintf("point %d: value %s clamped to %s (allowed range [%s, %s])",
				index, formatNum(f), formatNum(clamped), formatNum(opts.MinValue), formatNum(opts.MaxValue)),
			Field: fieldValue,
			Index: index,
		})
	}

	return clamped, errs, warns
}

// Clamp constrains v to the closed range [lo, hi]. Idempotent:
// Clamp(Clamp(v, lo, hi), lo, hi) == Clamp(v, lo, hi).
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// defaultName returns the substitute name for the record at index (1-based
// in the label, matching how users count their categories).
func defaultName(index int) string {
	return defaultNamePrefix + strconv.Itoa(index+1)
}

// toFloat reports raw as a float64 when it carries any numeric Go type.
func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// formatNum renders a float without trailing zero noise for messages.
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
