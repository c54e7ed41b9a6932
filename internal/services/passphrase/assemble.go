package passphrase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"xkcdget/internal/domain"
)

// Capitalize uppercases the first character of word and lowercases the rest.
func Capitalize(word string) (string, error) {
	first, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return "", fmt.Errorf("%w: chosen word is empty", domain.ErrInvariant)
	}
	return cases.Upper(language.Und).String(string(first)) +
		cases.Lower(language.Und).String(word[size:]), nil
}

// Assemble concatenates the capitalized words in slot order and appends suffix.
func Assemble(words []string, suffix string) (domain.Passphrase, error) {
	var b strings.Builder
	for i, w := range words {
		c, err := Capitalize(w)
		if err != nil {
			return "", fmt.Errorf("slot %d: %w", i, err)
		}
		b.WriteString(c)
	}
	b.WriteString(suffix)
	return domain.Passphrase(b.String()), nil
}
