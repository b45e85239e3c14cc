// Package report serializes check results deterministically.
//
// Reports are written as canonical JSON: object keys sorted by UTF-16 code
// units, strings NFC normalized, no HTML escaping and no insignificant
// whitespace. Equal reports therefore produce equal bytes, which is what
// golden snapshots and the run history hash rely on.
//
// Only strings, integers, booleans, []any and map[string]any are
// accepted. Floats and nil are rejected so a report can never change
// shape because of formatting or optional fields.
package report
