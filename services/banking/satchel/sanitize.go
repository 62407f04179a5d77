package satchel

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Characters Satchel accepts in free-text fields besides letters and digits.
const allowedPunctuation = " .,'-/&"

// Latin letters with no decomposition that still need an ASCII spelling.
var latinFoldings = map[rune]string{
	'ß': "ss",
	'ø': "o", 'Ø': "O",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "Th",
}

// Sanitize converts a free-text field to the character set Satchel accepts:
// diacritics are stripped to their base letter, special Latin letters are
// folded to ASCII spellings, other scripts are transliterated to their
// closest ASCII spelling, anything still disallowed is dropped and
// whitespace is collapsed. Applying it twice gives the same result.
func Sanitize(input string) string {
	var folded strings.Builder
	folded.Grow(len(input))
	for _, r := range input {
		if replacement, ok := latinFoldings[r]; ok {
			folded.WriteString(replacement)
		} else {
			folded.WriteRune(r)
		}
	}

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	decomposed, _, err := transform.String(stripMarks, folded.String())
	if err != nil {
		decomposed = folded.String()
	}

	// Cyrillic, Greek and anything else still outside ASCII.
	transliterated := unidecode.Unidecode(decomposed)

	var clean strings.Builder
	clean.Grow(len(transliterated))
	for _, r := range transliterated {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			clean.WriteRune(r)
		case strings.ContainsRune(allowedPunctuation, r):
			clean.WriteRune(r)
		case unicode.IsSpace(r):
			clean.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(clean.String()), " ")
}

// SanitizeName sanitizes a personal name and guarantees at least two
// space-separated tokens, because Satchel rejects single-word names. A single
// surviving token is duplicated.
func SanitizeName(input string) string {
	name := Sanitize(input)
	if name == "" {
		return name
	}
	if len(strings.Fields(name)) < 2 {
		name = name + " " + name
	}
	return name
}
