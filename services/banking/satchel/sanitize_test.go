package satchel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already compliant", "Main Street 42", "Main Street 42"},
		{"diacritics stripped", "José Müller", "Jose Muller"},
		{"special latin folded", "Łukasz Großmann", "Lukasz Grossmann"},
		{"nordic letters", "Søren Ødegård", "Soren Odegard"},
		{"icelandic thorn and eth", "Þórður", "Thordur"},
		{"whitespace collapsed", "  12   Rue \t de  la Paix ", "12 Rue de la Paix"},
		{"disallowed characters dropped", "O'Brien & Sons <script>", "O'Brien & Sons script"},
		{"cyrillic transliterated", "Main Страда 7", "Main Strada 7"},
		{"greek transliterated", "Odos Νίκης 12", "Odos Nikes 12"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.input)
			assert.Equal(t, tc.want, got)
			// Sanitization is idempotent.
			assert.Equal(t, got, Sanitize(got))
		})
	}
}

func TestSanitizeName(t *testing.T) {
	// Single-word names are duplicated because the provider rejects them.
	assert.Equal(t, "Cher Cher", SanitizeName("Cher"))
	assert.Equal(t, "Jane Doe", SanitizeName("Jane Doe"))
	// Names in other scripts keep both tokens through transliteration.
	assert.Equal(t, "Ivan Petrov", SanitizeName("Иван Петров"))
	assert.Equal(t, "", SanitizeName("   "))
	assert.Equal(t, "", SanitizeName("!!! ###"))
	// Idempotent, including the duplication rule.
	assert.Equal(t, "Cher Cher", SanitizeName(SanitizeName("Cher")))
}
