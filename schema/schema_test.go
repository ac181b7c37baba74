package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountSchema(t *testing.T) *RecordSchema {
	t.Helper()

	rs, err := NewBuilder("Account").
		Package("example.com/models", "models").
		Field("id", "ID", "int64").
		Field("display_name", "DisplayName", "string").
		Field("created_at", "CreatedAt", "time.Time", Import{Path: "time"}).
		Field("owner", "Owner", "*user.User", Import{Path: "example.com/user"}).
		Build()
	require.NoError(t, err)

	return rs
}

func TestBuilder_Build(t *testing.T) {
	rs := accountSchema(t)

	assert.Equal(t, "Account", rs.Name)
	assert.Equal(t, "models.Account", rs.String())
	assert.Equal(t, []string{"id", "display_name", "created_at", "owner"}, rs.FieldNames())
	assert.False(t, rs.Declared)

	assert.Equal(t, "DisplayName", rs.Fields[1].Variant())
	assert.Equal(t, "DisplayName", rs.Fields[1].StructField())
	assert.Equal(t, "time.Time", rs.Fields[2].Type.String())
}

func TestBuilder_DuplicateField(t *testing.T) {
	_, err := NewBuilder("Account").
		Field("id", "", "int").
		Field("id", "", "string").
		Build()
	require.Error(t, err)

	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, "Account", defErr.Record)
	assert.True(t, errors.Is(err, ErrDuplicateField))
	assert.Contains(t, err.Error(), `field "id" is declared more than once`)
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder("Account").Field("", "", "int").MustBuild()
	})
	assert.NotPanics(t, func() {
		NewBuilder("Account").Field("id", "", "int").MustBuild()
	})
}

func TestRecordSchema_Index(t *testing.T) {
	rs := accountSchema(t)

	i, ok := rs.Index("created_at")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = rs.Index("__not_a_field__")
	assert.False(t, ok)
}

func TestRecordSchema_Imports(t *testing.T) {
	rs := accountSchema(t)
	rs.Fields = append(rs.Fields,
		FieldSchema{Name: "updated_at", Type: TypeRef{Expr: "time.Time", Imports: []Import{{Path: "time"}}}},
		FieldSchema{Name: "self", Type: TypeRef{Expr: "*Account", Imports: []Import{{Path: "example.com/models"}}}},
	)

	assert.Equal(t, []Import{{Path: "example.com/user"}, {Path: "time"}}, rs.Imports())
}

func TestRecordSchema_Clone(t *testing.T) {
	rs := accountSchema(t)
	clone := rs.Clone()

	clone.Fields[0].Name = "changed"
	clone.Fields[2].Type.Imports[0].Path = "changed"

	assert.Equal(t, "id", rs.Fields[0].Name)
	assert.Equal(t, "time", rs.Fields[2].Type.Imports[0].Path)
}

func TestRecordSchema_Problems(t *testing.T) {
	rs := &RecordSchema{
		Name: "Odd",
		Fields: []FieldSchema{
			{Name: "ok", Type: TypeRef{Expr: "int"}},
			{Name: "with-dash", GoName: "WithDash", Type: TypeRef{Expr: "int"}},
			{Name: "no_type", GoName: "NoType"},
		},
	}

	problems := rs.Problems()
	codes := make([]string, len(problems))
	for i, p := range problems {
		codes[i] = p.Code
	}

	assert.Equal(t, []string{ProblemInvalidVariant, ProblemEmptyType}, codes)

	err := rs.Validate()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateField))
}

func TestRecordSchema_EmptyVariant(t *testing.T) {
	rs := &RecordSchema{
		Name: "Odd",
		Fields: []FieldSchema{
			{Name: "_", GoName: "Underscore", Type: TypeRef{Expr: "int"}},
		},
	}

	problems := rs.Problems()
	require.Len(t, problems, 1)
	assert.Equal(t, ProblemInvalidVariant, problems[0].Code)
	assert.Equal(t, "_", problems[0].Field)
	assert.Contains(t, problems[0].Message, "empty variant")
	assert.NoError(t, rs.Validate())
}

func TestRecordSchema_ImportConflict(t *testing.T) {
	rs := &RecordSchema{
		Name: "Seeds",
		Fields: []FieldSchema{
			{Name: "fast", Type: TypeRef{Expr: "*rand.Rand", Imports: []Import{{Path: "math/rand"}}}},
			{Name: "safe", Type: TypeRef{Expr: "rand.Reader", Imports: []Import{{Path: "crypto/rand"}}}},
		},
	}

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `imports "crypto/rand" and "math/rand" are both named rand`)

	rs.Fields[1].Type = TypeRef{Expr: "crand.Reader", Imports: []Import{{Alias: "crand", Path: "crypto/rand"}}}
	assert.NoError(t, rs.Validate())
}

func TestImport_Name(t *testing.T) {
	assert.Equal(t, "user", Import{Path: "example.com/user"}.Name())
	assert.Equal(t, "htmltemplate", Import{Alias: "htmltemplate", Path: "html/template"}.Name())
}

func TestRecordSchema_EmptyIsValid(t *testing.T) {
	rs := &RecordSchema{Name: "Empty"}

	require.NoError(t, rs.Validate())
	require.Len(t, rs.Problems(), 1)
	assert.Equal(t, ProblemEmptySchema, rs.Problems()[0].Code)
}
