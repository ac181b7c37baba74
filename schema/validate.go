package schema

import (
	"errors"
	"fmt"
	"strings"

	"partial-generator/internal/naming"
)

// Problem codes.
const (
	ProblemEmptyRecordName  = "empty-record-name"
	ProblemEmptyFieldName   = "empty-field-name"
	ProblemDuplicateField   = "duplicate-field"
	ProblemDuplicateGoName  = "duplicate-go-name"
	ProblemDuplicateVariant = "duplicate-variant"
	ProblemInvalidVariant   = "invalid-variant"
	ProblemInvalidGoName    = "invalid-go-name"
	ProblemEmptyType        = "empty-type"
	ProblemEmptySchema      = "empty-schema"
	ProblemImportConflict   = "import-conflict"
)

// Problem is a single definition-time finding about a schema.
type Problem struct {
	Code    string
	Field   string
	Message string
	// Fatal problems make the schema unusable.
	Fatal bool
}

// DefinitionError reports fatal problems found in a schema.
// No artifact set can exist for such a schema.
type DefinitionError struct {
	Record   string
	Problems []Problem
}

func (e *DefinitionError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Message
	}

	return fmt.Sprintf("invalid schema %s: %s", e.Record, strings.Join(parts, "; "))
}

// ErrDuplicateField is matched by errors.Is for a DefinitionError that
// contains a duplicate field name.
var ErrDuplicateField = errors.New("duplicate field")

// Is reports duplicate-field definition errors as ErrDuplicateField.
func (e *DefinitionError) Is(target error) bool {
	if target != ErrDuplicateField {
		return false
	}

	for _, p := range e.Problems {
		if p.Code == ProblemDuplicateField {
			return true
		}
	}

	return false
}

// Problems inspects the schema and returns every finding in field order.
// Variant checks only warn: the name transform is not validated beyond
// reporting results that are not identifiers.
func (s *RecordSchema) Problems() []Problem {
	var out []Problem

	if s.Name == "" {
		out = append(out, Problem{
			Code: ProblemEmptyRecordName, Message: "record name is empty", Fatal: true,
		})
	}

	if len(s.Fields) == 0 {
		out = append(out, Problem{
			Code: ProblemEmptySchema, Message: "record has no fields",
		})
	}

	names := make(map[string]bool, len(s.Fields))
	goNames := make(map[string]bool, len(s.Fields))
	variants := make(map[string]string, len(s.Fields))

	for i, f := range s.Fields {
		if f.Name == "" {
			out = append(out, Problem{
				Code:    ProblemEmptyFieldName,
				Message: fmt.Sprintf("field #%d has an empty name", i),
				Fatal:   true,
			})

			continue
		}

		if names[f.Name] {
			out = append(out, Problem{
				Code:    ProblemDuplicateField,
				Field:   f.Name,
				Message: fmt.Sprintf("field %q is declared more than once", f.Name),
				Fatal:   true,
			})

			continue
		}

		names[f.Name] = true

		goName := f.StructField()
		if goNames[goName] {
			out = append(out, Problem{
				Code:    ProblemDuplicateGoName,
				Field:   f.Name,
				Message: fmt.Sprintf("struct field %s is used by more than one field", goName),
				Fatal:   true,
			})
		}

		goNames[goName] = true

		if !naming.IsIdentifier(goName) {
			out = append(out, Problem{
				Code:    ProblemInvalidGoName,
				Field:   f.Name,
				Message: fmt.Sprintf("struct field %q is not a valid identifier", goName),
			})
		}

		if f.Type.Expr == "" {
			out = append(out, Problem{
				Code:    ProblemEmptyType,
				Field:   f.Name,
				Message: fmt.Sprintf("field %q has no type", f.Name),
				Fatal:   true,
			})
		}

		variant := f.Variant()
		switch {
		case variant == "":
			out = append(out, Problem{
				Code:    ProblemInvalidVariant,
				Field:   f.Name,
				Message: fmt.Sprintf("field %q has an empty variant", f.Name),
			})
		case !naming.IsIdentifier(s.Name + "Field" + variant):
			out = append(out, Problem{
				Code:    ProblemInvalidVariant,
				Field:   f.Name,
				Message: fmt.Sprintf("variant %q derived from %q is not a valid identifier", variant, f.Name),
			})
		}

		if prev, ok := variants[variant]; ok {
			out = append(out, Problem{
				Code:    ProblemDuplicateVariant,
				Field:   f.Name,
				Message: fmt.Sprintf("fields %q and %q both map to variant %s", prev, f.Name, variant),
			})
		}

		variants[variant] = f.Name
	}

	byName := make(map[string]string)

	for _, imp := range s.Imports() {
		name := imp.Name()
		if prev, ok := byName[name]; ok {
			out = append(out, Problem{
				Code:    ProblemImportConflict,
				Message: fmt.Sprintf("imports %q and %q are both named %s", prev, imp.Path, name),
				Fatal:   true,
			})

			continue
		}

		byName[name] = imp.Path
	}

	return out
}

// Validate returns a *DefinitionError when the schema has fatal problems.
func (s *RecordSchema) Validate() error {
	var fatal []Problem

	for _, p := range s.Problems() {
		if p.Fatal {
			fatal = append(fatal, p)
		}
	}

	if len(fatal) == 0 {
		return nil
	}

	return &DefinitionError{Record: s.Name, Problems: fatal}
}
