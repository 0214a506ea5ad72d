package roadmap

import (
	"regexp"
	"strings"
)

// prefixPattern matches a roadmap prefix at the start of a title:
// an uppercase letter, digits, then dot-separated digit groups
// (e.g. "C1", "C1.5", "C1.5.2").
var prefixPattern = regexp.MustCompile(`^[A-Z]\d+(?:\.\d+)*`)

// ExtractPrefix returns the roadmap prefix token at the start of a title,
// as written, and whether one was present.
func ExtractPrefix(title string) (string, bool) {
	m := prefixPattern.FindString(title)
	if m == "" {
		return "", false
	}
	return m, true
}

// SameFamily reports whether two prefixes belong to the same roadmap family.
// The family is the first character; the comparison is case-insensitive.
func SameFamily(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a[:1], b[:1])
}
