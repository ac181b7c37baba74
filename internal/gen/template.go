package gen

import (
	"text/template"
)

var partialTemplate = template.Must(template.New("partial").Parse(`// Code generated by partial-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{if .Declared}}
{{if .Comments}}// {{.Record}} is a record declared in a schema file.
{{end}}type {{.Record}} struct {
{{range .Fields}}	{{.GoName}} {{.Type}}
{{end}}}
{{end}}
{{if .Comments}}// {{.FieldType}} identifies a field of {{.Record}}.
{{end}}type {{.FieldType}} int

const (
{{range $i, $f := .Fields}}	{{$f.Const}}{{if eq $i 0}} {{$.FieldType}} = iota{{end}}
{{end}})

var {{.NamesVar}} = [...]string{
{{range .Fields}}	{{.Const}}: {{printf "%q" .Name}},
{{end}}}

var {{.VariantsVar}} = [...]string{
{{range .Fields}}	{{.Const}}: {{printf "%q" .Variant}},
{{end}}}

{{if .Comments}}// {{.FieldType}}s returns every {{.FieldType}} in declaration order.
{{end}}func {{.FieldType}}s() []{{.FieldType}} {
	return []{{.FieldType}}{
{{range .Fields}}		{{.Const}},
{{end}}	}
}

{{if .Comments}}// String returns the original field name.
{{end}}func (f {{.FieldType}}) String() string {
	if f < 0 || int(f) >= len({{.NamesVar}}) {
		return "{{.FieldType}}(" + strconv.Itoa(int(f)) + ")"
	}

	return {{.NamesVar}}[f]
}

{{if .Comments}}// Variant returns the identifier-case name of the field.
{{end}}func (f {{.FieldType}}) Variant() string {
	if f < 0 || int(f) >= len({{.VariantsVar}}) {
		return "{{.FieldType}}(" + strconv.Itoa(int(f)) + ")"
	}

	return {{.VariantsVar}}[f]
}

{{if .Comments}}// Parse{{.FieldType}} returns the {{.FieldType}} with the given original name.
{{end}}func Parse{{.FieldType}}(s string) ({{.FieldType}}, error) {
	switch s {
{{range .Fields}}	case {{printf "%q" .Name}}:
		return {{.Const}}, nil
{{end}}	}

	return -1, &{{.UnknownErr}}{Given: s}
}

{{if .Comments}}// {{.UnknownErr}} reports a name that matches no {{.FieldType}}.
{{end}}type {{.UnknownErr}} struct {
	Given string
}

func (e *{{.UnknownErr}}) Error() string {
	return "unknown field: " + e.Given
}

{{if .Comments}}// {{.MissingErr}} lists the absent fields of an incomplete {{.Partial}}
// in declaration order.
{{end}}type {{.MissingErr}} struct {
	Missing []{{.FieldType}}
}

func (e *{{.MissingErr}}) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}

	return "missing fields: " + strings.Join(names, ", ")
}

{{if .Comments}}// {{.Partial}} is a {{.Record}} whose fields are individually present or absent.
// The zero value is all-absent.
{{end}}type {{.Partial}} struct {
{{range .Fields}}	{{.GoName}} optional.Value[{{.Type}}]
{{end}}}

{{if .Comments}}// {{.Partial}}FromFull returns a {{.Partial}} with every field present.
{{end}}func {{.Partial}}FromFull(r {{.Record}}) {{.Partial}} {
	return {{.Partial}}{
{{range .Fields}}		{{.GoName}}: optional.Some(r.{{.GoName}}),
{{end}}	}
}

{{if .Comments}}// Has reports whether field f is present.
{{end}}func (p {{.Partial}}) Has(f {{.FieldType}}) bool {
	switch f {
{{range .Fields}}	case {{.Const}}:
		return p.{{.GoName}}.IsPresent()
{{end}}	default:
		return false
	}
}

{{if .Comments}}// MissingFields returns the absent fields in declaration order.
{{end}}func (p {{.Partial}}) MissingFields() []{{.FieldType}} {
	var missing []{{.FieldType}}
{{range .Fields}}
	if !p.{{.GoName}}.IsPresent() {
		missing = append(missing, {{.Const}})
	}
{{end}}
	return missing
}

{{if .Comments}}// CheckComplete returns a *{{.MissingErr}} listing every absent field,
// or nil when all fields are present.
{{end}}func (p {{.Partial}}) CheckComplete() error {
	if missing := p.MissingFields(); len(missing) > 0 {
		return &{{.MissingErr}}{Missing: missing}
	}

	return nil
}

{{if .Comments}}// Apply overwrites the fields of base that are present in p and keeps the rest.
{{end}}func (p {{.Partial}}) Apply(base {{.Record}}) {{.Record}} {
{{range .Fields}}	base.{{.GoName}} = p.{{.GoName}}.OrElse(base.{{.GoName}})
{{end}}
	return base
}

{{if .Comments}}// Merge combines p and other field by field. When both hold a field,
// other wins if preferOtherOnClash is set and p wins otherwise.
{{end}}func (p {{.Partial}}) Merge(other {{.Partial}}, preferOtherOnClash bool) {{.Partial}} {
	return {{.Partial}}{
{{range .Fields}}		{{.GoName}}: optional.Merge(p.{{.GoName}}, other.{{.GoName}}, preferOtherOnClash),
{{end}}	}
}

{{if .Comments}}// TryIntoFull converts p into a {{.Record}}, failing with a *{{.MissingErr}}
// that lists every absent field.
{{end}}func (p {{.Partial}}) TryIntoFull() ({{.Record}}, error) {
	if err := p.CheckComplete(); err != nil {
		return {{.Record}}{}, err
	}

	return p.Apply({{.Record}}{}), nil
}
`))
