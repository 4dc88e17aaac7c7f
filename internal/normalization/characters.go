package normalization

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// RemoveUnnecessaryCharacters strips control characters from the text,
// collapses runs of whitespace (spaces, tabs, carriage returns,
// newlines) into a single space, and trims the result. Idempotent:
// applying it twice yields the same output as applying it once.
func RemoveUnnecessaryCharacters(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
