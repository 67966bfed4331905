package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitize makes s safe to print on one terminal line.
// Keys and document names come from user files, so ANSI escapes, NUL, BEL
// and line breaks are dropped and invalid UTF-8 is replaced.
func sanitize(s string) string {
	// Fast path: nothing to strip.
	clean := utf8.ValidString(s)
	if clean {
		for _, r := range s {
			if unicode.IsControl(r) {
				clean = false
				break
			}
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToValidUTF8(s, "�") {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
