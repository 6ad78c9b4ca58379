package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

const greenhousePayload = `{
	"jobs": [
		{
			"id": 12345,
			"title": "Quantitative Trader Intern",
			"location": {"name": "Amsterdam, Netherlands"},
			"absolute_url": "https://boards.greenhouse.io/imc/jobs/12345",
			"updated_at": "2026-02-13T10:00:00-04:00"
		},
		{
			"id": 67890,
			"title": "Software Engineer",
			"location": {"name": "Chicago, IL"},
			"absolute_url": "https://boards.greenhouse.io/imc/jobs/67890",
			"updated_at": "2026-02-10T11:30:00Z"
		}
	]
}`

func TestGreenhouseFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/boards/imc/jobs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(greenhousePayload))
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv, "IMC", "imc", "IMC Trading")

	postings, err := adapter.Fetch(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(postings))
	}

	p := postings[0]
	if p.ID != "imc-12345" {
		t.Errorf("expected ID imc-12345, got %s", p.ID)
	}
	if p.Source != "IMC" || p.Company != "IMC Trading" {
		t.Errorf("source/company = %s/%s", p.Source, p.Company)
	}
	if p.Title != "Quantitative Trader Intern" {
		t.Errorf("unexpected title %s", p.Title)
	}
	if p.Location != "Amsterdam, Netherlands" {
		t.Errorf("unexpected location %s", p.Location)
	}
	if p.Link != "https://boards.greenhouse.io/imc/jobs/12345" {
		t.Errorf("unexpected link %s", p.Link)
	}
	if p.Posted == nil {
		t.Fatal("expected Posted to be set")
	}
	want := time.Date(2026, 2, 13, 14, 0, 0, 0, time.UTC)
	if !p.Posted.Equal(want) || p.Posted.Location() != time.UTC {
		t.Errorf("Posted = %v, want %v in UTC", p.Posted, want)
	}
}

func TestGreenhouseFetch_KeywordHoursLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(greenhousePayload))
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv, "IMC", "imc", "IMC Trading")
	adapter.now = func() time.Time { return time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		keyword string
		hours   int
		limit   int
		wantIDs []string
	}{
		{"keyword is case insensitive", "TRADER", 0, 0, []string{"imc-12345"}},
		{"hours window drops older", "", 24, 0, []string{"imc-12345"}},
		{"wide window keeps both", "", 24 * 7, 0, []string{"imc-12345", "imc-67890"}},
		{"limit caps results", "", 0, 1, []string{"imc-12345"}},
		{"no keyword match", "structurer", 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postings, err := adapter.Fetch(context.Background(), tt.keyword, tt.hours, tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(postings) != len(tt.wantIDs) {
				t.Fatalf("got %d postings, want %d", len(postings), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if postings[i].ID != id {
					t.Errorf("postings[%d].ID = %s, want %s", i, postings[i].ID, id)
				}
			}
		})
	}
}

func TestGreenhouseFetch_EmptyBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs": []}`))
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv, "EMPTY", "empty-co", "Empty Co")

	postings, err := adapter.Fetch(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 0 {
		t.Fatalf("expected 0 postings, got %d", len(postings))
	}
}

func TestGreenhouseFetch_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not valid json`))
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv, "BAD", "bad-co", "Bad Co")

	_, err := adapter.Fetch(context.Background(), "", 0, 0)
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestGreenhouseFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv, "FAIL", "fail-co", "Fail Co")

	_, err := adapter.Fetch(context.Background(), "", 0, 0)
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusTooManyRequests || httpErr.RetryAfter != 7*time.Second {
		t.Errorf("HTTPError = %+v", httpErr)
	}
}

// --- helpers ---

// roundTripFunc adapts a function into an http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// testClient rewrites every request to hit srv instead of the real API host.
func testClient(srv *httptest.Server) *http.Client {
	return &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			req.URL.Scheme = "http"
			req.URL.Host = srv.Listener.Addr().String()
			return http.DefaultTransport.RoundTrip(req)
		}),
	}
}

// newTestAdapter creates a GreenhouseAdapter wired to a test server.
func newTestAdapter(srv *httptest.Server, source, token, company string) *GreenhouseAdapter {
	return NewGreenhouseAdapter(source, token, company, testClient(srv))
}
