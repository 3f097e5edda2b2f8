package display

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the column chat text is wrapped at.
const DefaultWidth = 80

// Wrap word-wraps text to width columns, preserving ANSI escape sequences.
// A width of zero or less uses DefaultWidth.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// List joins names into an English list: "a", "a and b", "a, b and c".
func List(names []string) string {
	switch len(names) {
	case 0:
		return "nobody"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
