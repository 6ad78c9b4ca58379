package audit

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/country"
	"github.com/amishk599/bankradar/internal/model"
)

func newInspector(t *testing.T) Inspector {
	t.Helper()
	c, err := classify.Default()
	if err != nil {
		t.Fatalf("classify.Default: %v", err)
	}
	return Inspector{Classifier: c, Countries: country.New()}
}

func stored(in Inspector, id, source, title, location string, posted *time.Time) model.EnrichedPosting {
	p := model.EnrichedPosting{Candidate: model.Candidate{RawPosting: model.RawPosting{
		ID: id, Title: title, Link: "https://example.com/" + id, Source: source, Company: source,
		Location: location, Posted: posted,
	}}}
	p.Category = in.Classifier.Classify(title)
	if m := in.Countries.Normalize(location); m != nil {
		p.CountryCode, p.CountryName = m.Code, m.Name
	}
	return p
}

func TestInspector_ForReview(t *testing.T) {
	in := newInspector(t)
	clean := stored(in, "1", "SG", "Internal Audit Analyst", "Paris, FR", nil)
	noCountry := stored(in, "2", "SG", "Internal Audit Analyst", "Remote", nil)
	other := stored(in, "3", "SG", "Chauffeur", "Paris, FR", nil)
	drifted := stored(in, "4", "SG", "Internal Audit Analyst", "Paris, FR", nil)
	drifted.Category = "Legacy Category"

	if clean.Category == classify.Other {
		t.Fatalf("test title unexpectedly classified as Other")
	}

	got := in.ForReview([]model.EnrichedPosting{clean, noCountry, other, drifted})
	var ids []string
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	if strings.Join(ids, ",") != "2,3,4" {
		t.Errorf("ForReview ids = %v, want [2 3 4]", ids)
	}

	f := in.Inspect(drifted)
	if !f.Drift || f.Country == nil || f.Country.Code != "FR" {
		t.Errorf("Inspect(drifted) = %+v", f)
	}
}

func TestSortByPosted(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)
	postings := []model.EnrichedPosting{
		{Candidate: model.Candidate{RawPosting: model.RawPosting{ID: "undated"}}},
		{Candidate: model.Candidate{RawPosting: model.RawPosting{ID: "older", Posted: &older}}},
		{Candidate: model.Candidate{RawPosting: model.RawPosting{ID: "newer", Posted: &newer}}},
	}
	sortByPosted(postings)
	if postings[0].ID != "newer" || postings[1].ID != "older" || postings[2].ID != "undated" {
		t.Errorf("order = %s, %s, %s", postings[0].ID, postings[1].ID, postings[2].ID)
	}
}

func TestCountBySourceAndOfSource(t *testing.T) {
	postings := []model.EnrichedPosting{
		{Candidate: model.Candidate{RawPosting: model.RawPosting{ID: "1", Source: "SG"}}},
		{Candidate: model.Candidate{RawPosting: model.RawPosting{ID: "2", Source: "BNPP"}}},
		{Candidate: model.Candidate{RawPosting: model.RawPosting{ID: "3", Source: "SG"}}},
	}

	counts := CountBySource(postings)
	want := []SourceCount{{"", 3}, {"SG", 2}, {"BNPP", 1}}
	if len(counts) != len(want) {
		t.Fatalf("CountBySource = %+v", counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}

	if got := OfSource(postings, "SG"); len(got) != 2 {
		t.Errorf("OfSource(SG) returned %d postings, want 2", len(got))
	}
	if got := OfSource(postings, ""); len(got) != 3 {
		t.Errorf("OfSource(all) returned %d postings, want 3", len(got))
	}
}

func TestRenderDetail_ShowsExplanation(t *testing.T) {
	in := newInspector(t)
	p := stored(in, "1", "SG", "Internal Audit Analyst", "Paris, FR", nil)
	p.Category = "Legacy Category"
	f := in.Inspect(p)

	out := renderDetail(p, f, 80)
	for _, want := range []string{f.Explanation.Tag, "Legacy Category", "FR France (high)", "category changed"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q", want)
		}
	}
}

func TestAuditModel_Navigation(t *testing.T) {
	in := newInspector(t)
	all := []model.EnrichedPosting{
		stored(in, "1", "SG", "Internal Audit Analyst", "Paris, FR", nil),
		stored(in, "2", "SG", "Chauffeur", "Paris, FR", nil),
	}
	var m tea.Model = auditModel{all: all, review: in.ForReview(all), inspector: in}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	am := m.(auditModel)
	if am.view != viewDetail || am.detail.ID != "2" {
		t.Fatalf("view/detail = %v/%s, want detail of posting 2", am.view, am.detail.ID)
	}
	if am.finding.Explanation.Category != classify.Other {
		t.Errorf("finding category = %q, want Other", am.finding.Explanation.Category)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(auditModel).view != viewList {
		t.Error("esc should return to the list")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}
