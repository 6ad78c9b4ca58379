// Package pipeline turns fetched candidates into persisted, notified postings
// and runs whole fetch cycles.
package pipeline

import (
	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/contract"
	"github.com/amishk599/bankradar/internal/country"
	"github.com/amishk599/bankradar/internal/model"
)

// Enricher derives the taxonomy fields of a candidate.
type Enricher struct {
	classifier *classify.Classifier
	countries  *country.Normalizer
}

// NewEnricher returns an Enricher over the given classifier and country
// normalizer.
func NewEnricher(classifier *classify.Classifier, countries *country.Normalizer) *Enricher {
	return &Enricher{classifier: classifier, countries: countries}
}

// Enrich classifies the title, normalizes the contract wording and resolves
// the location's country. It does no I/O.
func (e *Enricher) Enrich(c model.Candidate) model.EnrichedPosting {
	c.RawPosting = c.RawPosting.Normalize()
	ep := model.EnrichedPosting{
		Candidate:    c,
		Category:     e.classifier.Classify(c.Title),
		ContractType: string(contract.Normalize(c.Title, c.Contract)),
	}
	if m := e.countries.Normalize(c.Location); m != nil {
		ep.CountryCode = m.Code
		ep.CountryName = m.Name
	}
	return ep
}
