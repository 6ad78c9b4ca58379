package audit

import (
	"sort"

	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/country"
	"github.com/amishk599/bankradar/internal/model"
)

// Inspector re-derives the taxonomy fields of stored postings with the
// current rules.
type Inspector struct {
	Classifier *classify.Classifier
	Countries  *country.Normalizer
}

// Finding is what the current rules say about a stored posting.
type Finding struct {
	Explanation classify.Explanation
	Country     *country.Match // nil when the location carries no signal
	Drift       bool           // stored category differs from the current one
}

// Inspect re-classifies p and resolves its location again.
func (in Inspector) Inspect(p model.EnrichedPosting) Finding {
	exp := in.Classifier.ClassifyWithExplanation(p.Title)
	return Finding{
		Explanation: exp,
		Country:     in.Countries.Normalize(p.Location),
		Drift:       exp.Category != p.Category,
	}
}

// NeedsReview reports whether p fell through to Other, has no country, or
// would be classified differently today.
func (in Inspector) NeedsReview(p model.EnrichedPosting) bool {
	f := in.Inspect(p)
	return f.Drift || f.Explanation.Category == classify.Other || p.CountryCode == ""
}

// ForReview returns the postings that need review, in their original order.
func (in Inspector) ForReview(postings []model.EnrichedPosting) []model.EnrichedPosting {
	var out []model.EnrichedPosting
	for _, p := range postings {
		if in.NeedsReview(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortByPosted orders postings newest first. Undated postings go last.
func sortByPosted(postings []model.EnrichedPosting) {
	sort.SliceStable(postings, func(i, j int) bool {
		if postings[i].Posted == nil {
			return false
		}
		if postings[j].Posted == nil {
			return true
		}
		return postings[i].Posted.After(*postings[j].Posted)
	})
}
