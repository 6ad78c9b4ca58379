package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAshbyFetch(t *testing.T) {
	payload := `{
		"jobs": [
			{
				"id": "a1",
				"title": "Equity Derivatives Structurer",
				"location": "Zurich",
				"employmentType": "FullTime",
				"jobUrl": "https://jobs.ashbyhq.com/bank/a1",
				"publishedAt": "2026-02-12T08:00:00.000+00:00",
				"isListed": true
			},
			{
				"id": "",
				"title": "Structuring Intern",
				"location": "Geneva",
				"employmentType": "Intern",
				"jobUrl": "https://jobs.ashbyhq.com/bank/b2",
				"publishedAt": "not-a-date",
				"isListed": true
			},
			{
				"id": "c3",
				"title": "Hidden Structurer",
				"jobUrl": "https://jobs.ashbyhq.com/bank/c3",
				"isListed": false
			}
		]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posting-api/job-board/bank" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	adapter := NewAshbyAdapter("BANK", "bank", "Bank AG", testClient(srv))

	postings, err := adapter.Fetch(context.Background(), "struct", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("expected 2 listed postings, got %d", len(postings))
	}
	if postings[0].ID != "bank-a1" || postings[0].Contract != "FullTime" || postings[0].Posted == nil {
		t.Errorf("unexpected first posting %+v", postings[0])
	}
	if postings[1].ID != "bank-b2" {
		t.Errorf("expected ID from job URL, got %s", postings[1].ID)
	}
	if postings[1].Posted != nil {
		t.Errorf("expected nil Posted for unparseable date, got %v", postings[1].Posted)
	}

	limited, err := adapter.Fetch(context.Background(), "", 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d postings", len(limited))
	}
}
