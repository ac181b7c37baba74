package schema

// Builder assembles a RecordSchema field by field, in declaration order.
//
//	rs, err := schema.NewBuilder("Account").
//		Package("example.com/models", "models").
//		Field("id", "ID", "int64").
//		Field("created_at", "CreatedAt", "time.Time", Import{Path: "time"}).
//		Build()
type Builder struct {
	rs RecordSchema
}

// NewBuilder starts a schema for the named record type.
func NewBuilder(record string) *Builder {
	return &Builder{rs: RecordSchema{Name: record}}
}

// Package sets the declaring package.
func (b *Builder) Package(pkgPath, pkgName string) *Builder {
	b.rs.PkgPath = pkgPath
	b.rs.PkgName = pkgName

	return b
}

// Declared marks the record type as one the generator must emit.
func (b *Builder) Declared() *Builder {
	b.rs.Declared = true

	return b
}

// Field appends a field. goName may be empty to reuse name.
func (b *Builder) Field(name, goName, typeExpr string, imports ...Import) *Builder {
	b.rs.Fields = append(b.rs.Fields, FieldSchema{
		Name:   name,
		GoName: goName,
		Type:   TypeRef{Expr: typeExpr, Imports: imports},
	})

	return b
}

// Build validates and returns the schema.
func (b *Builder) Build() (*RecordSchema, error) {
	rs := b.rs.Clone()
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	return rs, nil
}

// MustBuild is like Build but panics on an invalid schema.
// Schemas are fixed before any instance exists, so an invalid one is a
// programming error.
func (b *Builder) MustBuild() *RecordSchema {
	rs, err := b.Build()
	if err != nil {
		panic(err)
	}

	return rs
}
