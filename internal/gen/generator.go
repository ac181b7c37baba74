package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"partial-generator/internal/common"
	"partial-generator/internal/diagnostic"
	"partial-generator/schema"
)

// DefaultRuntimeImport is the import path of the optional package used by
// generated partial records.
const DefaultRuntimeImport = "partial-generator/optional"

// CodeReservedName reports a struct field that collides with a generated method.
const CodeReservedName = "reserved-name"

// reservedNames are the methods generated on Partial<Record>; a struct field
// with one of these names would not compile.
var reservedNames = []string{"Apply", "CheckComplete", "Has", "Merge", "MissingFields", "TryIntoFull"}

// CodeReservedImport reports a field type import whose name is taken by an
// import of the generated file itself.
const CodeReservedImport = "reserved-import"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package of the generated files.
	// Empty means the record's own package.
	PackageName string
	// OutputDir is where unformatted debug output is written on failure.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// FileSuffix is appended to the snake_case record name.
	FileSuffix string
	// RuntimeImport is the import path of the optional package.
	RuntimeImport string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		GenerateComments: true,
		FileSuffix:       "_partial.go",
		RuntimeImport:    DefaultRuntimeImport,
	}
}

// Generator generates partial-record Go code from record schemas.
type Generator struct {
	config GeneratorConfig
	logger zerolog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.FileSuffix == "" {
		config.FileSuffix = DefaultGeneratorConfig().FileSuffix
	}

	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{config: config, logger: zerolog.Nop()}
}

// WithLogger sets the logger used for diagnostics and progress.
func (g *Generator) WithLogger(logger zerolog.Logger) *Generator {
	g.logger = logger

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "account_partial.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Record is the schema the file was generated from.
	Record *schema.RecordSchema
}

// Check validates records and returns every diagnostic.
// Errors make generation impossible; warnings do not.
func (g *Generator) Check(records []*schema.RecordSchema) diagnostic.Diagnostics {
	d := diagnostic.CheckRecords(records)

	own := map[string]string{"strconv": "strconv", "strings": "strings"}
	own[common.PkgAlias(g.config.RuntimeImport)] = g.config.RuntimeImport

	for _, rs := range records {
		for _, f := range rs.Fields {
			if slices.Contains(reservedNames, f.StructField()) {
				d.AddError(CodeReservedName,
					fmt.Sprintf("struct field %s collides with a generated method", f.StructField()),
					rs.Name, f.Name)
			}
		}

		for _, imp := range rs.Imports() {
			if path, ok := own[imp.Name()]; ok && path != imp.Path {
				d.AddError(CodeReservedImport,
					fmt.Sprintf("import %q is named %s, which the generated file uses for %q", imp.Path, imp.Name(), path),
					rs.Name, "")
			}
		}
	}

	return d
}

// Generate generates one file per record schema.
// Invalid schemas abort generation before any file is produced.
func (g *Generator) Generate(records []*schema.RecordSchema) ([]GeneratedFile, error) {
	d := g.Check(records)

	for _, w := range d.Warnings {
		g.logger.Warn().Str("record", w.Record).Str("field", w.Field).Str("code", w.Code).Msg(w.Message)
	}

	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	files := make([]GeneratedFile, 0, len(records))

	for _, rs := range records {
		file, err := g.generateRecord(rs)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", rs, err)
		}

		g.logger.Debug().
			Str("record", rs.String()).
			Int("fields", len(rs.Fields)).
			Str("file", file.Filename).
			Msg("generated partial record")

		files = append(files, *file)
	}

	return files, nil
}

// generateRecord renders and formats the artifact set of a single record.
func (g *Generator) generateRecord(rs *schema.RecordSchema) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(rs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := partialTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
			Record:   rs,
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
		Record:   rs,
	}, nil
}

// templateData holds all data needed for the partial template.
type templateData struct {
	PackageName string
	Filename    string
	Imports     []importSpec
	Comments    bool
	// Declared emits the record struct itself.
	Declared bool

	Record      string // Account
	FieldType   string // AccountField
	Partial     string // PartialAccount
	MissingErr  string // MissingAccountFieldsError
	UnknownErr  string // UnknownAccountFieldError
	NamesVar    string // _AccountField_names
	VariantsVar string // _AccountField_variants

	Fields []fieldData
}

// fieldData describes one field for the template.
type fieldData struct {
	Name    string // original name, e.g. "display_name"
	Variant string // DisplayName
	Const   string // AccountFieldDisplayName
	GoName  string // struct field
	Type    string // Go type expression
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// buildTemplateData constructs the template data from a record schema.
func (g *Generator) buildTemplateData(rs *schema.RecordSchema) (*templateData, error) {
	pkgName := g.config.PackageName
	if pkgName == "" {
		pkgName = rs.PkgName
	}

	if pkgName == "" {
		return nil, fmt.Errorf("no package name for record %s", rs.Name)
	}

	fieldType := rs.Name + "Field"

	data := &templateData{
		PackageName: pkgName,
		Filename:    common.SnakeCase(rs.Name) + g.config.FileSuffix,
		Comments:    g.config.GenerateComments,
		Declared:    rs.Declared,
		Record:      rs.Name,
		FieldType:   fieldType,
		Partial:     "Partial" + rs.Name,
		MissingErr:  "Missing" + rs.Name + "FieldsError",
		UnknownErr:  "Unknown" + rs.Name + "FieldError",
		NamesVar:    "_" + fieldType + "_names",
		VariantsVar: "_" + fieldType + "_variants",
	}

	for _, f := range rs.Fields {
		data.Fields = append(data.Fields, fieldData{
			Name:    f.Name,
			Variant: f.Variant(),
			Const:   fieldType + f.Variant(),
			GoName:  f.StructField(),
			Type:    f.Type.Expr,
		})
	}

	data.Imports = g.collectImports(rs)

	return data, nil
}

// collectImports returns the sorted, deduplicated imports of a generated file.
func (g *Generator) collectImports(rs *schema.RecordSchema) []importSpec {
	imports := map[string]importSpec{
		"strconv": {Path: "strconv"},
		"strings": {Path: "strings"},
	}

	if len(rs.Fields) > 0 {
		imports[g.config.RuntimeImport] = importSpec{Path: g.config.RuntimeImport}
	}

	for _, imp := range rs.Imports() {
		spec := importSpec{Path: imp.Path}
		if imp.Alias != "" && imp.Alias != common.PkgAlias(imp.Path) {
			spec.Alias = imp.Alias
		}

		imports[imp.Path] = spec
	}

	out := make([]importSpec, 0, len(imports))
	for _, imp := range imports {
		out = append(out, imp)
	}

	slices.SortFunc(out, func(a, b importSpec) int { return strings.Compare(a.Path, b.Path) })

	return out
}
