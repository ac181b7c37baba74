package analyze

import (
	"fmt"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=NameSource -linecomment -output=namesource_string.go

// NameSource selects where a field's original name is read from.
type NameSource int

const (
	NameSourceGo   NameSource = iota // go
	NameSourceJSON                   // json
	NameSourceTag                    // tag
)

// NameSources lists every NameSource.
var NameSources = []NameSource{NameSourceGo, NameSourceJSON, NameSourceTag}

// TagKey is the struct tag read by NameSourceTag. The value "-" excludes the
// field from the schema regardless of the name source.
const TagKey = "partial"

// ParseNameSource parses "go", "json" or "tag".
func ParseNameSource(s string) (NameSource, error) {
	for _, ns := range NameSources {
		if ns.String() == strings.ToLower(s) {
			return ns, nil
		}
	}

	return NameSourceGo, fmt.Errorf("unknown name source %q (want go, json or tag)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n NameSource) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NameSource) UnmarshalText(text []byte) error {
	ns, err := ParseNameSource(string(text))
	if err != nil {
		return err
	}

	*n = ns

	return nil
}

// FieldName picks the original name of a struct field.
// The second result is false when the field is excluded.
func (n NameSource) FieldName(goName string, tag reflect.StructTag) (string, bool) {
	if tagValue(tag.Get(TagKey)) == "-" {
		return "", false
	}

	var name string

	switch n {
	case NameSourceJSON:
		name = tagValue(tag.Get("json"))
		if name == "-" {
			name = ""
		}
	case NameSourceTag:
		name = tagValue(tag.Get(TagKey))
	case NameSourceGo:
	}

	if name == "" {
		name = goName
	}

	return name, true
}

// tagValue returns the part of a tag value before the first comma.
func tagValue(tag string) string {
	name, _, _ := strings.Cut(tag, ",")

	return name
}
