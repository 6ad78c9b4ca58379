// Package filter holds the posting filters applied between fetch and
// persistence.
package filter

import (
	"strings"

	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/textnorm"
)

// TitleAndLocationFilter matches postings whose title contains any of the title
// keywords and whose location contains any of the location keywords.
// Matching ignores case and accents. Empty keyword lists match everything.
type TitleAndLocationFilter struct {
	titleKeywords []string
	locations     []string
}

// NewTitleAndLocationFilter returns a filter that requires both a title keyword
// match and a location keyword match.
func NewTitleAndLocationFilter(titleKeywords []string, locations []string) *TitleAndLocationFilter {
	return &TitleAndLocationFilter{
		titleKeywords: prepAll(titleKeywords),
		locations:     prepAll(locations),
	}
}

func prepAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = textnorm.Prep(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Match reports whether p passes both keyword lists.
func (f *TitleAndLocationFilter) Match(p model.RawPosting) bool {
	return containsAny(textnorm.Prep(p.Title), f.titleKeywords) &&
		containsAny(textnorm.Prep(p.Location), f.locations)
}

func containsAny(s string, words []string) bool {
	if len(words) == 0 {
		return true
	}
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
