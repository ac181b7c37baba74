// Package schema describes record types as ordered lists of named fields.
//
// A RecordSchema is the only input of the partial generator and of the
// runtime operation set in package partial. It can be built by hand with
// Builder, extracted from Go packages, or loaded from a YAML schema file.
//
// Key types:
//   - FieldSchema: original name, Go struct field and opaque TypeRef
//   - RecordSchema: record name, declaring package and ordered fields
//   - DefinitionError: fatal problems such as duplicate field names
package schema
