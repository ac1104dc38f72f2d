package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold trims surrounding whitespace and lowercases s for variant matching.
func Fold(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// VariantSet is a set of accepted folded spellings.
type VariantSet map[string]struct{}

// NewVariantSet builds a VariantSet from literal spellings. Entries are folded
// so the table can be written the way answers appear in the raw data.
func NewVariantSet(variants ...string) VariantSet {
	s := make(VariantSet, len(variants))
	for _, v := range variants {
		s[Fold(v)] = struct{}{}
	}
	return s
}

// Contains reports whether the folded form of v is in the set.
func (s VariantSet) Contains(v string) bool {
	_, ok := s[Fold(v)]
	return ok
}
