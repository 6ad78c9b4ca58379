package filter

import (
	"github.com/amishk599/bankradar/internal/model"
)

// allowedRunes is the French and English title alphabet. Titles with any other
// character are taken to be in another language.
const allowedRunes = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"àâäéèêëîïôöùûüç" +
	"ÀÂÄÉÈÊËÎÏÔÖÙÛÜÇ" +
	" -–—/()&.,:+'’[]«»#%✨"

// LanguageFilter rejects postings whose title uses characters outside the
// French/English alphabet.
type LanguageFilter struct {
	allowed map[rune]bool
}

// NewLanguageFilter returns the French/English title filter. extra adds
// characters to the allow-list.
func NewLanguageFilter(extra string) *LanguageFilter {
	allowed := make(map[rune]bool)
	for _, r := range allowedRunes + extra {
		allowed[r] = true
	}
	return &LanguageFilter{allowed: allowed}
}

// Match reports whether every rune of the title is allowed. An empty title
// passes.
func (f *LanguageFilter) Match(p model.RawPosting) bool {
	for _, r := range p.Title {
		if !f.allowed[r] {
			return false
		}
	}
	return true
}

// Offending returns the distinct disallowed runes of title in order of first
// appearance.
func (f *LanguageFilter) Offending(title string) string {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range title {
		if !f.allowed[r] && !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return string(out)
}
