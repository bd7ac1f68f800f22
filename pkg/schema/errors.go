package schema

import "fmt"

// SchemaError reports a missing, malformed or semantically invalid field in
// a portable circuit document. Reconstruction aborts on the first schema
// error; a partial circuit is never returned.
type SchemaError struct {
	Field  string // dotted path into the document, e.g. "connections[2]"
	Reason string
	Err    error // underlying model error, if any
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("schema: field %q: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

func errf(field, format string, args ...any) *SchemaError {
	return &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func wrapf(field string, err error, format string, args ...any) *SchemaError {
	return &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...), Err: err}
}
