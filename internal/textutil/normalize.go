package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize reduces arbitrary text to its canonical comparison form: lowercase
// ASCII letters and digits separated by single spaces, with no leading or
// trailing space. Accented characters are decomposed and reduced to their
// ASCII base; code points with no ASCII base are dropped entirely. Input that
// carries no representable characters normalizes to the empty string.
func Normalize(value string) string {
	if value == "" {
		return ""
	}

	decomposed := norm.NFD.String(value)
	var b strings.Builder
	b.Grow(len(decomposed))
	pendingSpace := false
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r + ('a' - 'A'))
		case r < utf8.RuneSelf:
			// ASCII separator run, emitted as a single space before the
			// next kept character.
			pendingSpace = true
		default:
			// Non-ASCII code points (combining marks included) vanish
			// without acting as separators.
		}
	}
	return b.String()
}
