package strutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase returns the string with the first letter of each word capitalized.
// e.g. "light rain" → "Light Rain"
func ToTitleCase(s string) string {
	// Create a Unicode-aware title caser
	caser := cases.Title(language.English)

	// Apply title casing to lowercase string
	return caser.String(strings.ToLower(s))
}

// IsYes reports whether an answer to a yes/no prompt is "yes", ignoring case
// and surrounding whitespace.
func IsYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
