package naming

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator splits a field name into words.
const Separator = "_"

// Transform converts a snake_case field name into an identifier-case name.
// The pipeline:
// 1. Split on "_".
// 2. Upper-case the first rune of every segment, keep the rest unchanged.
// 3. Concatenate; empty segments contribute nothing.
//
// Examples:
//   - "user_id" -> "UserId"
//   - "_private" -> "Private"
//   - "already_Upper" -> "AlreadyUpper"
//   - "HTTPStatus" -> "HTTPStatus"
//
// Leading runes without an upper-case form are kept as is, so the result is
// not guaranteed to be a valid identifier. Use IsIdentifier to check.
func Transform(name string) string {
	var sb strings.Builder

	sb.Grow(len(name))

	for _, segment := range strings.Split(name, Separator) {
		sb.WriteString(upperFirst(segment))
	}

	return sb.String()
}

// upperFirst upper-cases the first rune of s.
func upperFirst(s string) string {
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return strings.ToUpper(string(r)) + s[size:]
}

// IsIdentifier reports whether s is a valid Go identifier that is not a keyword.
func IsIdentifier(s string) bool {
	return token.IsIdentifier(s)
}

// IsExported reports whether s starts with an upper-case letter.
func IsExported(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsUpper(r)
}
