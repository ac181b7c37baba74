package schemafile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"partial-generator/schema"
)

// CurrentVersion is the only schema file version understood by this package.
const CurrentVersion = "1"

// File is the root of a YAML schema file.
type File struct {
	Version string       `yaml:"version"`
	Package string       `yaml:"package"`
	Imports []ImportSpec `yaml:"imports,omitempty"`
	Records []Record     `yaml:"records"`
}

// Record declares one record type.
type Record struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field declares one field of a record.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// GoName overrides the struct field name; defaults to the variant name.
	GoName string `yaml:"go_name,omitempty"`
}

// ImportSpec is an import needed by field types.
// In YAML it is either a bare path or a mapping with alias and path.
type ImportSpec schema.Import

// Name returns the identifier the import is referred to by.
func (s ImportSpec) Name() string {
	return schema.Import(s).Name()
}

// UnmarshalYAML accepts either a scalar path or an {alias, path} mapping.
func (s *ImportSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var path string

		if err := node.Decode(&path); err != nil {
			return err
		}

		*s = ImportSpec{Path: path}

		return nil

	case yaml.MappingNode:
		var imp schema.Import

		if err := node.Decode(&imp); err != nil {
			return err
		}

		*s = ImportSpec(imp)

		return nil

	default:
		return fmt.Errorf("line %d: expected import path or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes a bare path when the import has no alias.
func (s ImportSpec) MarshalYAML() (any, error) {
	if s.Alias == "" {
		return s.Path, nil
	}

	return schema.Import(s), nil
}
