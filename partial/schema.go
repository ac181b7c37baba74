package partial

import (
	"fmt"
	"reflect"

	"partial-generator/internal/suggest"
	"partial-generator/schema"
)

// DefaultTagKey is the struct tag that overrides a field's name.
const DefaultTagKey = "partial"

// Field identifies one field of a Schema. Fields of one schema are totally
// ordered by Ordinal, which matches declaration order.
type Field struct {
	ordinal int
	name    string
	variant string
}

// Name returns the original field name.
func (f Field) Name() string { return f.name }

// String returns the original field name.
func (f Field) String() string { return f.name }

// Variant returns the identifier-case name derived from the field name.
func (f Field) Variant() string { return f.variant }

// Ordinal returns the position of the field in the schema.
func (f Field) Ordinal() int { return f.ordinal }

// Schema binds a RecordSchema to the struct type R and carries the
// operation set. A Schema is immutable and safe for concurrent use.
type Schema[R any] struct {
	record *schema.RecordSchema
	fields []Field
	byName map[string]int
	// index[i] is the struct field index of fields[i] in R.
	index []int
	types []reflect.Type
}

type options struct {
	tagKey string
}

// Option configures Derive.
type Option func(*options)

// WithTagKey reads field names from the given struct tag (e.g. "json")
// instead of the default "partial" tag.
func WithTagKey(key string) Option {
	return func(o *options) {
		o.tagKey = key
	}
}

// Derive builds a Schema from the fields of struct type R.
// A field's name is taken from its tag (see WithTagKey) or its Go name.
// Fields tagged "-" under the tag key or partial:"-" are left out.
// Unexported fields cannot be set through reflection, so Derive fails on
// any unexported field that is not tagged partial:"-".
func Derive[R any](opts ...Option) (*Schema[R], error) {
	o := options{tagKey: DefaultTagKey}
	for _, opt := range opts {
		opt(&o)
	}

	rt := reflect.TypeFor[R]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("partial: %s is not a struct type", rt)
	}

	rs := &schema.RecordSchema{
		Name:    rt.Name(),
		PkgPath: rt.PkgPath(),
	}

	for i := range rt.NumField() {
		sf := rt.Field(i)

		name := tagName(sf.Tag.Get(o.tagKey))
		if name == "-" || tagName(sf.Tag.Get(DefaultTagKey)) == "-" {
			continue
		}

		if !sf.IsExported() {
			return nil, fmt.Errorf("partial: %s field %s is unexported; tag it `%s:\"-\"` to leave it out",
				rt, sf.Name, DefaultTagKey)
		}

		if name == "" {
			name = sf.Name
		}

		rs.Fields = append(rs.Fields, schema.FieldSchema{
			Name:   name,
			GoName: sf.Name,
			Type:   schema.TypeRef{Expr: sf.Type.String()},
		})
	}

	return Bind[R](rs)
}

// MustDerive is like Derive but panics when R cannot describe a valid schema.
func MustDerive[R any](opts ...Option) *Schema[R] {
	s, err := Derive[R](opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Bind attaches an explicitly authored schema to struct type R.
// Every field's struct field must exist in R and be exported.
func Bind[R any](rs *schema.RecordSchema) (*Schema[R], error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	rt := reflect.TypeFor[R]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("partial: %s is not a struct type", rt)
	}

	s := &Schema[R]{
		record: rs.Clone(),
		fields: make([]Field, len(rs.Fields)),
		byName: make(map[string]int, len(rs.Fields)),
		index:  make([]int, len(rs.Fields)),
		types:  make([]reflect.Type, len(rs.Fields)),
	}

	for i, f := range rs.Fields {
		sf, ok := rt.FieldByName(f.StructField())
		if !ok || len(sf.Index) != 1 || !sf.IsExported() {
			return nil, fmt.Errorf("partial: %s has no exported field %s for %q", rt, f.StructField(), f.Name)
		}

		s.fields[i] = Field{ordinal: i, name: f.Name, variant: f.Variant()}
		s.byName[f.Name] = i
		s.index[i] = sf.Index[0]
		s.types[i] = sf.Type
	}

	return s, nil
}

// Record returns a copy of the underlying record schema.
func (s *Schema[R]) Record() *schema.RecordSchema {
	return s.record.Clone()
}

// Fields returns every field in schema order.
func (s *Schema[R]) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)

	return out
}

// FieldByName parses an original field name.
func (s *Schema[R]) FieldByName(name string) (Field, error) {
	i, ok := s.byName[name]
	if !ok {
		names := make([]string, len(s.fields))
		for j, f := range s.fields {
			names[j] = f.name
		}

		suggestion, _ := suggest.Closest(name, names)

		return Field{}, &UnknownFieldError{Given: name, Suggestion: suggestion}
	}

	return s.fields[i], nil
}

// owns reports whether f belongs to s.
func (s *Schema[R]) owns(f Field) bool {
	return f.ordinal >= 0 && f.ordinal < len(s.fields) && s.fields[f.ordinal] == f
}

// tagName returns the name part of a struct tag value ("name,omitempty").
func tagName(tag string) string {
	for i := range len(tag) {
		if tag[i] == ',' {
			return tag[:i]
		}
	}

	return tag
}
