// Package analyze extracts record schemas from Go struct declarations.
//
// It uses golang.org/x/tools/go/packages with go/types to read the fields
// of named struct types, exported or not, in declaration order, and renders
// each field type relative to the declaring package together with the
// imports the expression needs. Two packages with the same name get
// distinct import names within one record.
//
// Field names come from a NameSource: the Go field name, the json tag, or
// the partial tag. A partial:"-" tag always excludes the field.
package analyze
