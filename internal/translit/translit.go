// Package translit converts Bulgarian Cyrillic text to Latin script using
// the streamlined transliteration system. Pure functions, no state.
package translit

import (
	"strings"
	"unicode"
)

var table = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l",
	'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s",
	'т': "t", 'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sht", 'ъ': "a", 'ь': "y", 'ю': "yu", 'я': "ya",
}

// Transliterate maps Bulgarian Cyrillic letters to their Latin
// equivalents, preserving capitalization of the first letter of a
// transliterated sequence. Characters outside the table pass through
// unchanged.
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		lat, ok := table[unicode.ToLower(r)]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteString(strings.ToUpper(lat[:1]))
			b.WriteString(lat[1:])
		} else {
			b.WriteString(lat)
		}
	}
	return b.String()
}
