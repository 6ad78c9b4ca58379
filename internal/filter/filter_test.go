package filter

import (
	"testing"

	"github.com/amishk599/bankradar/internal/model"
)

func posting(title, location string) model.RawPosting {
	return model.RawPosting{Title: title, Location: location}
}

func TestTitleAndLocationFilter_Match(t *testing.T) {
	tests := []struct {
		name          string
		titleKeywords []string
		locations     []string
		posting       model.RawPosting
		wantMatch     bool
	}{
		{
			name:          "matches both title and location",
			titleKeywords: []string{"risk", "audit"},
			locations:     []string{"Paris", "London"},
			posting:       posting("Credit Risk Analyst", "Paris, FR"),
			wantMatch:     true,
		},
		{
			name:          "title match but location miss",
			titleKeywords: []string{"risk"},
			locations:     []string{"Paris"},
			posting:       posting("Market Risk Analyst", "New York, NY"),
			wantMatch:     false,
		},
		{
			name:          "case and accent insensitive",
			titleKeywords: []string{"CHARGÉ"},
			locations:     []string{"ile-de-france"},
			posting:       posting("Chargé d'affaires", "Île-de-France"),
			wantMatch:     true,
		},
		{
			name:          "no keywords match",
			titleKeywords: []string{"trader", "structurer"},
			locations:     []string{"Paris"},
			posting:       posting("Compliance Officer", "Paris"),
			wantMatch:     false,
		},
		{
			name:          "empty keyword lists pass all",
			titleKeywords: []string{},
			locations:     []string{" "},
			posting:       posting("Any Role", "Anywhere"),
			wantMatch:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTitleAndLocationFilter(tt.titleKeywords, tt.locations)
			got := f.Match(tt.posting)
			if got != tt.wantMatch {
				t.Errorf("Match() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestLanguageFilter_Match(t *testing.T) {
	f := NewLanguageFilter("")

	tests := []struct {
		title string
		want  bool
	}{
		{"Analyste Crédit (H/F)", true},
		{"Summer Analyst – Global Markets [2026]", true},
		{"Chargé(e) d’affaires «Entreprises»", true},
		{"", true},
		{"Analista de Crédito según", false},
		{"Kundenberater für Großkunden", false},
		{"銀行アナリスト", false},
		{"Аналитик", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := f.Match(posting(tt.title, "")); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestLanguageFilter_Extra(t *testing.T) {
	f := NewLanguageFilter("ñ")
	if !f.Match(posting("Ingeniero de España", "")) {
		t.Error("extra allowed rune was not honoured")
	}
}

func TestLanguageFilter_Offending(t *testing.T) {
	f := NewLanguageFilter("")
	if got := f.Offending("Analista según año"); got != "úñ" {
		t.Errorf("Offending = %q, want %q", got, "úñ")
	}
}
