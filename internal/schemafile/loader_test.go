package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partial-generator/schema"
)

const accountYAML = `
version: "1"
package: models
imports:
  - time
  - alias: stdurl
    path: net/url
records:
  - name: Account
    fields:
      - name: id
        type: int64
      - name: display_name
        type: string
      - name: created_at
        type: time.Time
        go_name: Created
      - name: links
        type: map[string]*stdurl.URL
  - name: Settings
    fields:
      - name: theme
        type: string
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(accountYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "models", f.Package)

	require.Len(t, f.Imports, 2)
	assert.Equal(t, ImportSpec{Path: "time"}, f.Imports[0])
	assert.Equal(t, ImportSpec{Alias: "stdurl", Path: "net/url"}, f.Imports[1])
	assert.Equal(t, "time", f.Imports[0].Name())
	assert.Equal(t, "stdurl", f.Imports[1].Name())

	require.Len(t, f.Records, 2)
	assert.Equal(t, "Account", f.Records[0].Name)
	assert.Len(t, f.Records[0].Fields, 4)
	assert.Equal(t, "Created", f.Records[0].Fields[2].GoName)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("package: models\nrecords: []\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "bad yaml", yaml: "records: [", wantErr: "failed to parse schema YAML"},
		{name: "future version", yaml: "version: \"2\"\npackage: x\n", wantErr: "unsupported schema file version"},
		{name: "no package", yaml: "records: []\n", wantErr: "no package"},
		{name: "bad import", yaml: "package: x\nimports:\n  - [a, b]\n", wantErr: "expected import path or mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Parse([]byte("version: \"2\"\npackage: x\n"))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestFile_Records(t *testing.T) {
	f, err := Parse([]byte(accountYAML))
	require.NoError(t, err)

	records, err := f.Schemas()
	require.NoError(t, err)
	require.Len(t, records, 2)

	account := records[0]
	assert.Equal(t, "Account", account.Name)
	assert.Equal(t, "models", account.PkgName)
	assert.Empty(t, account.PkgPath)
	assert.True(t, account.Declared)
	assert.Equal(t, []string{"id", "display_name", "created_at", "links"}, account.FieldNames())

	assert.Equal(t, "Id", account.Fields[0].GoName)
	assert.Equal(t, "DisplayName", account.Fields[1].GoName)
	assert.Equal(t, "Created", account.Fields[2].GoName)

	assert.Empty(t, account.Fields[0].Type.Imports)
	assert.Equal(t, []schema.Import{{Path: "time"}}, account.Fields[2].Type.Imports)
	assert.Equal(t, []schema.Import{{Alias: "stdurl", Path: "net/url"}}, account.Fields[3].Type.Imports)

	assert.Equal(t, []schema.Import{
		{Alias: "stdurl", Path: "net/url"},
		{Path: "time"},
	}, account.Imports())

	assert.Equal(t, []string{"theme"}, records[1].FieldNames())
	assert.Empty(t, records[1].Imports())
}

func TestFile_Records_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "unknown qualifier",
			yaml: `
package: models
records:
  - name: Event
    fields:
      - name: at
        type: time.Time
`,
			wantErr: "not listed in imports",
		},
		{
			name: "misspelled qualifier",
			yaml: `
package: models
imports:
  - time
records:
  - name: Event
    fields:
      - name: at
        type: tme.Time
`,
			wantErr: "(did you mean time?)",
		},
		{
			name: "invalid expression",
			yaml: `
package: models
records:
  - name: Event
    fields:
      - name: at
        type: "map[string"
`,
			wantErr: "invalid type expression",
		},
		{
			name: "duplicate field",
			yaml: `
package: models
records:
  - name: Event
    fields:
      - name: at
        type: int
      - name: at
        type: string
`,
			wantErr: "declared more than once",
		},
		{
			name: "missing type",
			yaml: `
package: models
records:
  - name: Event
    fields:
      - name: at
`,
			wantErr: "has no type",
		},
		{
			name: "import name clash",
			yaml: `
package: models
imports:
  - crypto/rand
  - math/rand
records: []
`,
			wantErr: "import name rand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = f.Schemas()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFile_Records_DuplicateFieldIs(t *testing.T) {
	f := &File{
		Version: CurrentVersion,
		Package: "models",
		Records: []Record{{
			Name:   "Event",
			Fields: []Field{{Name: "at", Type: "int"}, {Name: "at", Type: "int"}},
		}},
	}

	_, err := f.Schemas()
	assert.ErrorIs(t, err, schema.ErrDuplicateField)
}

func TestFromRecords_RoundTrip(t *testing.T) {
	rs := schema.NewBuilder("Account").
		Package("partial-generator/examples/account", "account").
		Field("id", "ID", "int64").
		Field("created_at", "Stamp", "time.Time", schema.Import{Alias: "time", Path: "time"}).
		Field("home", "Home", "*stdurl.URL", schema.Import{Alias: "stdurl", Path: "net/url"}).
		MustBuild()

	f := FromRecords("models", []*schema.RecordSchema{rs})

	assert.Equal(t, []ImportSpec{{Alias: "stdurl", Path: "net/url"}, {Path: "time"}}, f.Imports)
	assert.Equal(t, "ID", f.Records[0].Fields[0].GoName)
	assert.Equal(t, "Stamp", f.Records[0].Fields[1].GoName)

	path := filepath.Join(t.TempDir(), "account.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- time\n")
	assert.Contains(t, string(data), "alias: stdurl")

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	records, err := loaded.Schemas()
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, rs.FieldNames(), records[0].FieldNames())
	assert.Equal(t, "ID", records[0].Fields[0].GoName)
	assert.Equal(t, "Stamp", records[0].Fields[1].GoName)
	assert.Equal(t, "*stdurl.URL", records[0].Fields[2].Type.Expr)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
