package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partial-generator/schema"
)

const (
	accountPkg = "partial-generator/examples/account"
	profilePkg = "partial-generator/internal/analyze/testdata/profile"
)

func TestAnalyzer_LoadRecords_Account(t *testing.T) {
	analyzer := NewAnalyzer(NameSourceTag)
	records, err := analyzer.LoadRecords(accountPkg, "Account")
	require.NoError(t, err)
	require.Len(t, records, 1)

	account := records[0]
	assert.Equal(t, "Account", account.Name)
	assert.Equal(t, accountPkg, account.PkgPath)
	assert.Equal(t, "account", account.PkgName)
	assert.False(t, account.Declared)

	// declaration order, unexported fields included
	assert.Equal(t, []string{"id", "display_name", "active", "tags", "created_at", "revision"}, account.FieldNames())

	tags := account.Fields[3]
	assert.Equal(t, "Tags", tags.GoName)
	assert.Equal(t, "[]string", tags.Type.Expr)
	assert.Empty(t, tags.Type.Imports)

	createdAt := account.Fields[4]
	assert.Equal(t, "CreatedAt", createdAt.GoName)
	assert.Equal(t, "time.Time", createdAt.Type.Expr)
	assert.Equal(t, []schema.Import{{Alias: "time", Path: "time"}}, createdAt.Type.Imports)

	revision := account.Fields[5]
	assert.Equal(t, "revision", revision.GoName)
	assert.Equal(t, "int", revision.Type.Expr)

	assert.Equal(t, []schema.Import{{Alias: "time", Path: "time"}}, account.Imports())
	assert.NotEmpty(t, analyzer.PackageDir(accountPkg))
	assert.Empty(t, analyzer.PackageDir("example.com/not/loaded"))
}

func TestAnalyzer_LoadRecords_GoNames(t *testing.T) {
	records, err := NewAnalyzer(NameSourceGo).LoadRecords(accountPkg, "Account")
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "DisplayName", "Active", "Tags", "CreatedAt", "revision"}, records[0].FieldNames())
}

func TestAnalyzer_LoadRecords_JSONNames(t *testing.T) {
	records, err := NewAnalyzer(NameSourceJSON).LoadRecords(profilePkg, "Profile", "Audit")
	require.NoError(t, err)
	require.Len(t, records, 2)

	profile := records[0]
	assert.Equal(t, "Profile", profile.Name)
	assert.Equal(t, []string{"Audit", "owner", "homepage", "labels", "tz", "Internal", "LastSeen", "cache"}, profile.FieldNames())

	byName := make(map[string]schema.FieldSchema)
	for _, f := range profile.Fields {
		byName[f.Name] = f
	}

	assert.Equal(t, "Audit", byName["Audit"].Type.Expr)
	assert.Empty(t, byName["Audit"].Type.Imports)

	assert.Equal(t, "*account.Account", byName["owner"].Type.Expr)
	assert.Equal(t, []schema.Import{{Alias: "account", Path: accountPkg}}, byName["owner"].Type.Imports)

	assert.Equal(t, "*url.URL", byName["homepage"].Type.Expr)
	assert.Equal(t, "map[string]string", byName["labels"].Type.Expr)
	assert.Equal(t, "Timezone", byName["tz"].GoName)
	assert.Equal(t, "*time.Time", byName["LastSeen"].Type.Expr)

	assert.Equal(t, []schema.Import{
		{Alias: "url", Path: "net/url"},
		{Alias: "account", Path: accountPkg},
		{Alias: "time", Path: "time"},
	}, profile.Imports())

	assert.Equal(t, "Audit", records[1].Name)
	assert.Equal(t, []string{"UpdatedBy"}, records[1].FieldNames())
}

func TestAnalyzer_LoadRecords_SameNamedImports(t *testing.T) {
	records, err := NewAnalyzer(NameSourceGo).LoadRecords(profilePkg, "Templates")
	require.NoError(t, err)

	rs := records[0]
	assert.Equal(t, "*template.Template", rs.Fields[0].Type.Expr)
	assert.Equal(t, "*template2.Template", rs.Fields[1].Type.Expr)
	assert.Equal(t, "map[string]*template2.Template", rs.Fields[2].Type.Expr)

	assert.Equal(t, []schema.Import{
		{Alias: "template2", Path: "html/template"},
		{Alias: "template", Path: "text/template"},
	}, rs.Imports())
	require.NoError(t, rs.Validate())
}

func TestAnalyzer_LoadRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		wantErr string
	}{
		{name: "missing type", typ: "Nope", wantErr: "type Nope not found"},
		{name: "misspelled type", typ: "Profle", wantErr: "type Profle not found (did you mean Profile?)"},
		{name: "not a type", typ: "DefaultLevel", wantErr: "is not a type"},
		{name: "not a struct", typ: "Level", wantErr: "is not a struct type"},
		{name: "alias", typ: "Alias", wantErr: "is an alias"},
		{name: "generic", typ: "Pair", wantErr: "is generic"},
		{name: "duplicate name", typ: "Clash", wantErr: "declared more than once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalyzer(NameSourceJSON).LoadRecords(profilePkg, tt.typ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAnalyzer_LoadRecords_NoTypes(t *testing.T) {
	_, err := NewAnalyzer(NameSourceGo).LoadRecords(accountPkg)
	require.ErrorIs(t, err, ErrNoTypes)
}

func TestAnalyzer_LoadRecords_BadPackage(t *testing.T) {
	_, err := NewAnalyzer(NameSourceGo).LoadRecords("partial-generator/does/not/exist", "X")
	require.Error(t, err)
}

func TestAnalyzer_WithDir(t *testing.T) {
	records, err := NewAnalyzer(NameSourceTag).
		WithDir("../../examples/account").
		LoadRecords(".", "Account")
	require.NoError(t, err)

	assert.Equal(t, accountPkg, records[0].PkgPath)
}

func TestParseNameSource(t *testing.T) {
	for _, ns := range NameSources {
		got, err := ParseNameSource(ns.String())
		require.NoError(t, err)
		assert.Equal(t, ns, got)
	}

	got, err := ParseNameSource("JSON")
	require.NoError(t, err)
	assert.Equal(t, NameSourceJSON, got)

	_, err = ParseNameSource("yaml")
	require.Error(t, err)

	assert.Equal(t, "NameSource(7)", NameSource(7).String())
}

func TestNameSource_Text(t *testing.T) {
	text, err := NameSourceTag.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "tag", string(text))

	var ns NameSource
	require.NoError(t, ns.UnmarshalText([]byte("json")))
	assert.Equal(t, NameSourceJSON, ns)

	require.Error(t, ns.UnmarshalText([]byte("xml")))
	assert.Equal(t, NameSourceJSON, ns)
}

func TestNameSource_FieldName(t *testing.T) {
	tests := []struct {
		name   string
		source NameSource
		tag    reflect.StructTag
		want   string
		keep   bool
	}{
		{name: "go ignores tags", source: NameSourceGo, tag: `json:"id" partial:"pk"`, want: "ID", keep: true},
		{name: "json", source: NameSourceJSON, tag: `json:"id,omitempty"`, want: "id", keep: true},
		{name: "json missing", source: NameSourceJSON, tag: ``, want: "ID", keep: true},
		{name: "json options only", source: NameSourceJSON, tag: `json:",omitempty"`, want: "ID", keep: true},
		{name: "json dash", source: NameSourceJSON, tag: `json:"-"`, want: "ID", keep: true},
		{name: "tag", source: NameSourceTag, tag: `partial:"pk"`, want: "pk", keep: true},
		{name: "tag missing", source: NameSourceTag, tag: `json:"id"`, want: "ID", keep: true},
		{name: "partial dash excludes", source: NameSourceGo, tag: `partial:"-"`, keep: false},
		{name: "partial dash excludes json", source: NameSourceJSON, tag: `json:"id" partial:"-"`, keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := tt.source.FieldName("ID", tt.tag)
			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.want, got)
		})
	}
}
