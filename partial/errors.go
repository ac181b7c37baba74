package partial

import (
	"strings"
)

// MissingFieldsError lists the absent fields of an incomplete partial record,
// in schema order. It is never empty.
type MissingFieldsError struct {
	Missing []Field
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.Name()
	}

	return "missing fields: " + strings.Join(names, ", ")
}

// UnknownFieldError reports a field name that matches no field of the schema.
type UnknownFieldError struct {
	Given string
	// Suggestion is the closest known field name, if any is close.
	Suggestion string
}

func (e *UnknownFieldError) Error() string {
	return "unknown field: " + e.Given
}
