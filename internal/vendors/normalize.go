package vendors

import (
	"strings"
	"unicode"
)

// legal-suffix noise stripped before comparison, after punctuation removal.
var companySuffixes = []string{
	"inc", "incorporated", "corp", "corporation", "llc", "ltd", "limited",
	"co", "company", "gmbh", "plc",
}

// NormalizeName produces the canonical matching key for a vendor name:
// case-folded, punctuation stripped, whitespace collapsed.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// stripSuffix removes one trailing legal suffix from a normalized name, so
// "acme corp" and "acme corporation" compare equal.
func stripSuffix(norm string) string {
	for _, suf := range companySuffixes {
		if strings.HasSuffix(norm, " "+suf) {
			return strings.TrimSpace(strings.TrimSuffix(norm, " "+suf))
		}
	}
	return norm
}

// tokenSet splits a normalized name into its unique tokens.
func tokenSet(norm string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range strings.Fields(norm) {
		out[tok] = struct{}{}
	}
	return out
}
