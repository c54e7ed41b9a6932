// Package wordlist provides the vocabularies passphrase words are chosen from.
package wordlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"

	"xkcdget/internal/domain"
)

// ExpectedLen is the pinned length of every embedded list. A list of any
// other length means the data changed underneath the selection code.
const ExpectedLen = 2048

// DefaultLanguage names the list used when none is configured.
const DefaultLanguage = "english"

var languages = map[string][]string{
	"english":             wordlists.English,
	"spanish":             wordlists.Spanish,
	"french":              wordlists.French,
	"italian":             wordlists.Italian,
	"japanese":            wordlists.Japanese,
	"korean":              wordlists.Korean,
	"chinese_simplified":  wordlists.ChineseSimplified,
	"chinese_traditional": wordlists.ChineseTraditional,
	"czech":               wordlists.Czech,
}

// Languages returns the names Lookup accepts, sorted.
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the embedded list for a language name.
func Lookup(name string) ([]string, error) {
	list, ok := languages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown word list %q (have %s)",
			domain.ErrConfig, name, strings.Join(Languages(), ", "))
	}
	return list, nil
}

// Combined uses one list for every slot.
type Combined struct {
	List  []string
	Count int
}

// NewCombined returns a source choosing count words from list.
func NewCombined(list []string, count int) Combined {
	return Combined{List: list, Count: count}
}

func (c Combined) Slots() int { return c.Count }
func (c Combined) Words(_ int) []string { return c.List }

// Split assigns lists to slots round-robin, e.g. adjective, noun, verb,
// adjective, ...
type Split struct {
	Lists [][]string
	Count int
}

// NewSplit returns a source cycling through lists for count slots.
func NewSplit(count int, lists ...[]string) Split {
	return Split{Lists: lists, Count: count}
}

func (s Split) Slots() int { return s.Count }

func (s Split) Words(slot int) []string {
	if len(s.Lists) == 0 {
		return nil
	}
	return s.Lists[slot%len(s.Lists)]
}

// FromLanguages builds a source from configured language names: a single name
// gives a Combined source, several give a Split source in the given order.
func FromLanguages(names []string, count int) (domain.WordSource, error) {
	if len(names) == 0 {
		names = []string{DefaultLanguage}
	}
	lists := make([][]string, 0, len(names))
	for _, name := range names {
		list, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	if len(lists) == 1 {
		return NewCombined(lists[0], count), nil
	}
	return NewSplit(count, lists...), nil
}

// Check verifies every slot's list against expectedLen and rejects empty
// lists or words. It runs once, before any derivation.
func Check(src domain.WordSource, expectedLen int) error {
	if src.Slots() < 1 || src.Slots() > 256 {
		return fmt.Errorf("%w: word count must be in [1,256], got %d", domain.ErrConfig, src.Slots())
	}
	for slot := range src.Slots() {
		list := src.Words(slot)
		if len(list) != expectedLen {
			return fmt.Errorf("%w: word list for slot %d has %d entries, expected %d",
				domain.ErrConfig, slot, len(list), expectedLen)
		}
		if i := slices.Index(list, ""); i >= 0 {
			return fmt.Errorf("%w: word list for slot %d has an empty entry at %d", domain.ErrConfig, slot, i)
		}
	}
	return nil
}

var (
	_ domain.WordSource = Combined{}
	_ domain.WordSource = Split{}
)
