package util

import (
	"strings"
	"unicode"
)

// SanitizeDownloadName makes a person's name safe for a quoted
// Content-Disposition filename. Quotes, backslashes and control characters
// are dropped, slashes become dashes and whitespace runs collapse to one
// space. The result may be empty.
func SanitizeDownloadName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '"' || r == '\\':
			continue
		case r == '/':
			b.WriteRune('-')
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case unicode.IsControl(r):
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
