package pages

import (
	"strings"
	"unicode"
)

// slugify lowercases the input and collapses every run of whitespace
// into a single hyphen. Punctuation is left untouched: "Jane Q. Doe"
// becomes "jane-q.-doe". The timestamp suffix added by the clone flow
// keeps slugs unique, so no further normalization is needed.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte('-')
			inSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
