package suggest

import (
	"strings"
	"unicode"
)

// Normalize case-folds an identifier and strips separators, so that
// "created_at", "createdAt" and "CreatedAt" compare equal.
func Normalize(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
