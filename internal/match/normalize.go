package match

import (
	"strings"
	"unicode"
)

// NormalizeEmail normalizes an email address by lowercasing and trimming
// whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailDomain returns the part after the last @, or "" when the address
// has none.
func emailDomain(email string) string {
	idx := strings.LastIndex(email, "@")
	if idx < 0 || idx == len(email)-1 {
		return ""
	}
	return email[idx+1:]
}

// foldText lowercases and trims a free-text field. Case folding happens
// here once; the similarity primitives never re-fold.
func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripPunctuation replaces every non-letter, non-digit rune with a
// space and collapses runs of whitespace.
func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevSpace := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevSpace = false
		default:
			if !prevSpace && b.Len() > 0 {
				b.WriteRune(' ')
				prevSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// dropTokens removes whole-word occurrences of the given token set.
func dropTokens(s string, drop map[string]bool) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if !drop[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
