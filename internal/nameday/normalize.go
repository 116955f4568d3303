package nameday

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var dateKeyPattern = regexp.MustCompile(`^\d{2}-\d{2}$`)

// normalizeKey prepares free-text input for index matching: trim, NFC so
// composed and decomposed Cyrillic compare equal, lowercase.
func normalizeKey(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// dateKey builds the zero-padded "MM-DD" index key.
func dateKey(month, day int) string {
	return fmt.Sprintf("%02d-%02d", month, day)
}

// isDateKey reports whether s is in "MM-DD" form.
func isDateKey(s string) bool {
	return dateKeyPattern.MatchString(s)
}
