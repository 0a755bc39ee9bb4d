package eval

import "strings"

const trailingPunct = ".,!?;:"

// Normalize canonicalizes a raw answer before comparison: trims the
// ends, case-folds unless caseSensitive, collapses whitespace runs to a
// single space, and strips trailing punctuation. Idempotent.
func Normalize(raw string, caseSensitive bool) string {
	s := strings.TrimSpace(raw)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	s = strings.Join(strings.Fields(s), " ")
	// Strip spaces along with the punctuation: "chien ." must reach
	// "chien" in one pass to stay idempotent.
	return strings.TrimRight(s, trailingPunct+" ")
}
