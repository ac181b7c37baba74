package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"

	"golang.org/x/tools/go/packages"

	"partial-generator/internal/suggest"
	"partial-generator/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// ErrNoTypes is returned when LoadRecords is called without type names.
var ErrNoTypes = errors.New("no type names given")

// Analyzer loads Go packages and extracts record schemas from struct types.
type Analyzer struct {
	names NameSource
	dir   string
	pkgs  map[string]*packages.Package
}

// NewAnalyzer creates a new Analyzer reading field names from the given source.
func NewAnalyzer(names NameSource) *Analyzer {
	return &Analyzer{
		names: names,
		pkgs:  make(map[string]*packages.Package),
	}
}

// WithDir sets the working directory patterns are resolved against.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir

	return a
}

// LoadRecords loads the packages matching pattern and returns the schemas of
// the named struct types, in the order requested.
// Pattern is a standard Go package pattern (e.g., ".", "./models",
// "partial-generator/examples/account").
func (a *Analyzer) LoadRecords(pattern string, typeNames ...string) ([]*schema.RecordSchema, error) {
	if len(typeNames) == 0 {
		return nil, ErrNoTypes
	}

	pkgs, err := a.load(pattern)
	if err != nil {
		return nil, err
	}

	records := make([]*schema.RecordSchema, 0, len(typeNames))

	for _, name := range typeNames {
		rs, err := a.findRecord(pkgs, name)
		if err != nil {
			return nil, err
		}

		records = append(records, rs)
	}

	return records, nil
}

// PackageDir returns the directory of a loaded package, or "" if unknown.
func (a *Analyzer) PackageDir(pkgPath string) string {
	pkg, ok := a.pkgs[pkgPath]
	if !ok {
		return ""
	}

	if pkg.Dir != "" {
		return pkg.Dir
	}

	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	return ""
}

// load runs packages.Load and fails on any package error.
func (a *Analyzer) load(pattern string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %q", pattern)
	}

	for _, pkg := range pkgs {
		a.pkgs[pkg.PkgPath] = pkg
	}

	return pkgs, nil
}

// findRecord looks up a struct type by name in the loaded packages.
func (a *Analyzer) findRecord(pkgs []*packages.Package, name string) (*schema.RecordSchema, error) {
	for _, pkg := range pkgs {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}

		typeName, ok := obj.(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("%s.%s is not a type", pkg.PkgPath, name)
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			return nil, fmt.Errorf("%s.%s is an alias, declare a named struct type", pkg.PkgPath, name)
		}

		if named.TypeParams().Len() > 0 {
			return nil, fmt.Errorf("%s.%s is generic, generic records are not supported", pkg.PkgPath, name)
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			return nil, fmt.Errorf("%s.%s is not a struct type", pkg.PkgPath, name)
		}

		return a.analyzeStruct(pkg.Types, name, st)
	}

	var known []string
	for _, pkg := range pkgs {
		known = append(known, pkg.Types.Scope().Names()...)
	}

	return nil, fmt.Errorf("type %s not found%s", name, suggest.Hint(name, known))
}

// analyzeStruct extracts the fields of a struct into a RecordSchema.
// Unexported fields are kept: the generated code lives in the same package.
func (a *Analyzer) analyzeStruct(pkg *types.Package, name string, st *types.Struct) (*schema.RecordSchema, error) {
	rs := &schema.RecordSchema{
		Name:    name,
		PkgPath: pkg.Path(),
		PkgName: pkg.Name(),
	}

	names := newImportNames()

	for i := range st.NumFields() {
		field := st.Field(i)

		fieldName, ok := a.names.FieldName(field.Name(), reflect.StructTag(st.Tag(i)))
		if !ok {
			continue
		}

		rs.Fields = append(rs.Fields, schema.FieldSchema{
			Name:   fieldName,
			GoName: field.Name(),
			Type:   typeRef(field.Type(), pkg, names),
		})
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}

	return rs, nil
}

// importNames assigns each foreign package of one record a distinct name.
// A package whose name is already taken is aliased with a numeric suffix.
type importNames struct {
	byPath map[string]string
	byName map[string]string
}

func newImportNames() *importNames {
	return &importNames{byPath: make(map[string]string), byName: make(map[string]string)}
}

func (n *importNames) name(p *types.Package) string {
	if name, ok := n.byPath[p.Path()]; ok {
		return name
	}

	name := p.Name()
	for i := 2; n.byName[name] != ""; i++ {
		name = p.Name() + strconv.Itoa(i)
	}

	n.byPath[p.Path()] = name
	n.byName[name] = p.Path()

	return name
}

// typeRef renders t relative to pkg and collects the imports it needs.
func typeRef(t types.Type, pkg *types.Package, names *importNames) schema.TypeRef {
	var imports []schema.Import

	seen := make(map[string]bool)
	qualifier := func(p *types.Package) string {
		if p == nil || p.Path() == pkg.Path() {
			return ""
		}

		name := names.name(p)
		if !seen[p.Path()] {
			seen[p.Path()] = true
			imports = append(imports, schema.Import{Alias: name, Path: p.Path()})
		}

		return name
	}

	return schema.TypeRef{
		Expr:    types.TypeString(t, qualifier),
		Imports: imports,
	}
}
