package schema

import (
	"fmt"
	"slices"
	"strings"

	"partial-generator/internal/common"
	"partial-generator/internal/naming"
)

// Import is a package import needed by a type expression.
type Import struct {
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"` // empty unless it differs from the last path element
	Path  string `json:"path" yaml:"path"`
}

// Name returns the identifier the import is referred to by.
func (i Import) Name() string {
	if i.Alias != "" {
		return i.Alias
	}

	return common.PkgAlias(i.Path)
}

// TypeRef is an opaque reference to a field's type.
// Expr is the Go type expression as written inside the record's package,
// e.g. "int64", "*time.Time", "[]Item".
type TypeRef struct {
	Expr    string   `json:"expr"`
	Imports []Import `json:"imports,omitempty"`
}

// String returns the type expression.
func (t TypeRef) String() string {
	return t.Expr
}

// FieldSchema describes one field of a record.
type FieldSchema struct {
	// Name is the original field name; it is what the field enum renders and parses.
	Name string `json:"name"`
	// GoName is the struct field holding the value. Defaults to Name.
	GoName string `json:"go_name,omitempty"`
	// Type of the field value.
	Type TypeRef `json:"type"`
}

// Variant returns the enumeration variant name derived from Name.
func (f FieldSchema) Variant() string {
	return naming.Transform(f.Name)
}

// StructField returns the Go struct field name.
func (f FieldSchema) StructField() string {
	if f.GoName != "" {
		return f.GoName
	}

	return f.Name
}

// RecordSchema is the ordered field list of a record type.
// Order is significant: it fixes enum ordering and every iteration order.
type RecordSchema struct {
	// Name of the record type, e.g. "Account".
	Name string `json:"name"`
	// PkgPath is the import path of the package declaring the record.
	PkgPath string `json:"pkg_path,omitempty"`
	// PkgName is the package name of the declaring package.
	PkgName string `json:"pkg_name"`
	// Fields in declaration order.
	Fields []FieldSchema `json:"fields"`
	// Declared reports that the record type itself must be emitted.
	Declared bool `json:"declared,omitempty"`
}

// FieldNames returns the original field names in schema order.
func (s *RecordSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// Index returns the position of the field with the given original name.
func (s *RecordSchema) Index(name string) (int, bool) {
	i := slices.IndexFunc(s.Fields, func(f FieldSchema) bool { return f.Name == name })

	return i, i >= 0
}

// Imports returns the deduplicated imports of all field types, sorted by path.
func (s *RecordSchema) Imports() []Import {
	byPath := make(map[string]Import)

	for _, f := range s.Fields {
		for _, imp := range f.Type.Imports {
			if imp.Path == "" || imp.Path == s.PkgPath {
				continue
			}

			byPath[imp.Path] = imp
		}
	}

	out := make([]Import, 0, len(byPath))
	for _, imp := range byPath {
		out = append(out, imp)
	}

	slices.SortFunc(out, func(a, b Import) int { return strings.Compare(a.Path, b.Path) })

	return out
}

// Clone returns a deep copy of the schema.
func (s *RecordSchema) Clone() *RecordSchema {
	out := *s
	out.Fields = make([]FieldSchema, len(s.Fields))

	for i, f := range s.Fields {
		f.Type.Imports = slices.Clone(f.Type.Imports)
		out.Fields[i] = f
	}

	return &out
}

// String returns "pkg.Name" or "Name".
func (s *RecordSchema) String() string {
	if s.PkgName == "" {
		return s.Name
	}

	return fmt.Sprintf("%s.%s", s.PkgName, s.Name)
}
