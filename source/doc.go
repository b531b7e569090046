// Package source adapts external data into the raw records the validator
// consumes, so the dynamic shape of host data never leaks into the core.
//
// What:
//
//   - Source is the single adapter contract: anything that can yield a
//     sequence of raw validate.Record pairs.
//   - Slice wraps in-memory records.
//   - JSONSource decodes a JSON array of objects, optionally rejecting
//     structurally broken documents against an embedded JSON Schema first.
//   - XLSXSource reads name/value pairs from the first two columns of a
//     spreadsheet via excelize.
//
// Why:
//
//	Adapters deliberately do NOT clean the data: a non-string name or a
//	non-numeric value is passed through as-is so the validator can report
//	it with the proper taxonomy code and index. Adapters only fail on
//	transport-level problems — unreadable files, non-array JSON, missing
//	sheets.
//
// Errors:
//
//   - ErrNotArray — the JSON document's top level is not an array.
//   - I/O and format faults from the underlying decoders, wrapped with context.
package source
