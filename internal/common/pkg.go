package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SnakeCase converts a Go type name into a snake_case file name stem.
// Examples:
//   - "Account" -> "account"
//   - "AccountSettings" -> "account_settings"
//   - "HTTPConfig" -> "http_config"
func SnakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder

	sb.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && startsWord(runes, i) {
			sb.WriteByte('_')
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// startsWord reports whether the upper-case rune at i begins a new word.
func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if prev == '_' {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// End of acronym: "HTTPConfig" splits before 'C'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
