package foldeq

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EOF is returned by the cursor when no significant rune is left.
const EOF rune = 0

// skipSpace drops leading insignificant whitespace.
func skipSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// pull splits off the next significant rune of s. The remainder has its
// leading whitespace removed. ok is false when s holds nothing but
// whitespace.
func pull(s string) (r rune, rest string, ok bool) {
	s = skipSpace(s)
	if s == "" {
		return EOF, "", false
	}

	r, size := utf8.DecodeRuneInString(s)
	return r, skipSpace(s[size:]), true
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// scanNumber accumulates the maximal run of ASCII digits at the start of s.
// Digits must be contiguous. Overflow wraps.
func scanNumber(s string) (value uint64, rest string) {
	s = skipSpace(s)

	i := 0
	for i < len(s) && isDigit(rune(s[i])) {
		value *= 10
		value += uint64(s[i] - '0')
		i++
	}

	return value, skipSpace(s[i:])
}
