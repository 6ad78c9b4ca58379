package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

func TestLeverFetch_Success(t *testing.T) {
	created := time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC)
	payload := `[
		{
			"id": "abc-123",
			"text": "Sales Trading Intern",
			"categories": {
				"team": "Markets",
				"location": "London",
				"commitment": "Intern",
				"allLocations": ["London", "Paris"]
			},
			"createdAt": ` + itoa(created.UnixMilli()) + `,
			"hostedUrl": "https://jobs.lever.co/acme/abc-123"
		},
		{
			"id": "def-456",
			"text": "Operations Analyst",
			"categories": {"location": "Madrid", "commitment": "Full-time"},
			"createdAt": 0,
			"hostedUrl": "https://jobs.lever.co/acme/def-456"
		}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/postings/acme" || r.URL.Query().Get("mode") != "json" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	adapter := NewLeverAdapter("ACME", "acme", "Acme Bank", testClient(srv))

	postings, err := adapter.Fetch(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(postings))
	}

	p := postings[0]
	if p.ID != "acme-abc-123" {
		t.Errorf("expected ID acme-abc-123, got %s", p.ID)
	}
	if p.Location != "London, Paris" {
		t.Errorf("expected joined allLocations, got %q", p.Location)
	}
	if p.Contract != "Intern" {
		t.Errorf("expected commitment as contract text, got %q", p.Contract)
	}
	if p.Posted == nil || !p.Posted.Equal(created) {
		t.Errorf("Posted = %v, want %v", p.Posted, created)
	}

	if postings[1].Location != "Madrid" {
		t.Errorf("expected fallback location Madrid, got %q", postings[1].Location)
	}
	if postings[1].Posted != nil {
		t.Errorf("expected nil Posted for zero createdAt, got %v", postings[1].Posted)
	}
}

func TestLeverFetch_HoursKeepsUndated(t *testing.T) {
	now := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	old := now.Add(-72 * time.Hour).UnixMilli()
	payload := `[
		{"id": "old", "text": "Risk Analyst", "categories": {}, "createdAt": ` + itoa(old) + `, "hostedUrl": "https://x/old"},
		{"id": "undated", "text": "Risk Analyst", "categories": {}, "createdAt": 0, "hostedUrl": "https://x/undated"}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	adapter := NewLeverAdapter("ACME", "acme", "Acme Bank", testClient(srv))
	adapter.now = func() time.Time { return now }

	postings, err := adapter.Fetch(context.Background(), "risk", 24, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 1 || postings[0].ID != "acme-undated" {
		t.Fatalf("expected only the undated posting, got %+v", postings)
	}
}

func TestLeverFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	adapter := NewLeverAdapter("ACME", "acme", "Acme Bank", testClient(srv))

	_, err := adapter.Fetch(context.Background(), "", 0, 0)
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
