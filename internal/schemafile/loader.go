package schemafile

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"partial-generator/internal/common"
	"partial-generator/internal/naming"
	"partial-generator/internal/suggest"
	"partial-generator/schema"
)

// ErrUnsupportedVersion is returned for schema files of an unknown version.
var ErrUnsupportedVersion = errors.New("unsupported schema file version")

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, f.Version)
	}

	if f.Package == "" {
		return nil, errors.New("schema file has no package")
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

// Schemas converts the file into validated record schemas, in file order.
// A field's GoName defaults to its variant name, and each field carries only
// the imports its type expression refers to.
func (f *File) Schemas() ([]*schema.RecordSchema, error) {
	imports := make(map[string]schema.Import, len(f.Imports))

	for _, imp := range f.Imports {
		if imp.Path == "" {
			return nil, errors.New("import with empty path")
		}

		if prev, ok := imports[imp.Name()]; ok && prev.Path != imp.Path {
			return nil, fmt.Errorf("import name %s used for both %s and %s", imp.Name(), prev.Path, imp.Path)
		}

		imports[imp.Name()] = schema.Import(imp)
	}

	records := make([]*schema.RecordSchema, 0, len(f.Records))

	for _, r := range f.Records {
		rs := &schema.RecordSchema{
			Name:     r.Name,
			PkgName:  f.Package,
			Declared: true,
			Fields:   make([]schema.FieldSchema, 0, len(r.Fields)),
		}

		for _, field := range r.Fields {
			ref, err := typeRef(field.Type, imports)
			if err != nil {
				return nil, fmt.Errorf("record %s field %s: %w", r.Name, field.Name, err)
			}

			goName := field.GoName
			if goName == "" {
				goName = naming.Transform(field.Name)
			}

			rs.Fields = append(rs.Fields, schema.FieldSchema{
				Name:   field.Name,
				GoName: goName,
				Type:   ref,
			})
		}

		if err := rs.Validate(); err != nil {
			return nil, err
		}

		records = append(records, rs)
	}

	return records, nil
}

// FromRecords builds a schema file declaring the given records in package pkg.
// Imports are merged across all fields.
func FromRecords(pkg string, records []*schema.RecordSchema) *File {
	f := &File{Version: CurrentVersion, Package: pkg}
	seen := make(map[string]bool)

	for _, rs := range records {
		r := Record{Name: rs.Name}

		for _, field := range rs.Fields {
			out := Field{Name: field.Name, Type: field.Type.Expr}
			if field.GoName != naming.Transform(field.Name) {
				out.GoName = field.GoName
			}

			r.Fields = append(r.Fields, out)
		}

		for _, imp := range rs.Imports() {
			if seen[imp.Path] {
				continue
			}

			seen[imp.Path] = true

			if imp.Alias == common.PkgAlias(imp.Path) {
				imp.Alias = ""
			}

			f.Imports = append(f.Imports, ImportSpec(imp))
		}

		f.Records = append(f.Records, r)
	}

	slices.SortFunc(f.Imports, func(a, b ImportSpec) int { return strings.Compare(a.Path, b.Path) })

	return f
}

// typeRef parses a type expression and resolves its package qualifiers
// against the file imports.
func typeRef(expr string, imports map[string]schema.Import) (schema.TypeRef, error) {
	ref := schema.TypeRef{Expr: expr}
	if expr == "" {
		return ref, nil
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		return ref, fmt.Errorf("invalid type expression %q: %w", expr, err)
	}

	var unknown []string

	used := make(map[string]bool)

	ast.Inspect(node, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkg, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		imp, ok := imports[pkg.Name]
		if !ok {
			unknown = append(unknown, pkg.Name)
			return false
		}

		if !used[imp.Path] {
			used[imp.Path] = true
			ref.Imports = append(ref.Imports, imp)
		}

		return false
	})

	if len(unknown) > 0 {
		known := make([]string, 0, len(imports))
		for name := range imports {
			known = append(known, name)
		}

		slices.Sort(known)

		return ref, fmt.Errorf("type %q refers to packages not listed in imports: %v%s",
			expr, unknown, suggest.Hint(unknown[0], known))
	}

	return ref, nil
}
