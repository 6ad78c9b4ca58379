package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

const leverBaseURL = "https://api.lever.co/v0/postings"

// leverCategories represents the categories object in a Lever posting.
type leverCategories struct {
	Team         string   `json:"team"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Commitment   string   `json:"commitment"`
	AllLocations []string `json:"allLocations"`
}

// leverJob represents a single posting in the Lever API response.
type leverJob struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Categories leverCategories `json:"categories"`
	CreatedAt  int64           `json:"createdAt"`
	HostedURL  string          `json:"hostedUrl"`
}

// LeverAdapter fetches postings from the Lever public postings API.
type LeverAdapter struct {
	source      string
	companySlug string
	companyName string
	client      *http.Client
	now         func() time.Time
}

// NewLeverAdapter creates a new adapter for a Lever board.
func NewLeverAdapter(source, companySlug, companyName string, client *http.Client) *LeverAdapter {
	return &LeverAdapter{
		source:      source,
		companySlug: companySlug,
		companyName: companyName,
		client:      client,
		now:         time.Now,
	}
}

// Fetch retrieves the board and keeps the postings matching keyword that were
// created within the last hours, up to limit. The Lever commitment ("Intern",
// "Full-time") is passed on as raw contract text.
func (a *LeverAdapter) Fetch(ctx context.Context, keyword string, hours, limit int) ([]model.RawPosting, error) {
	url := fmt.Sprintf("%s/%s?mode=json", leverBaseURL, a.companySlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("lever fetch for %s: %w", a.companySlug, err)
	}

	var leverJobs []leverJob
	if err := doJSON(a.client, req, "lever fetch for "+a.companySlug, &leverJobs); err != nil {
		return nil, err
	}

	w := newWindow(keyword, hours, limit, a.now())
	postings := make([]model.RawPosting, 0, len(leverJobs))
	for _, lj := range leverJobs {
		if w.full(len(postings)) {
			break
		}

		// Prefer allLocations if available, fall back to location.
		location := lj.Categories.Location
		if len(lj.Categories.AllLocations) > 0 {
			location = strings.Join(lj.Categories.AllLocations, ", ")
		}

		// createdAt is Unix milliseconds.
		var posted *time.Time
		if lj.CreatedAt > 0 {
			t := time.UnixMilli(lj.CreatedAt).UTC()
			posted = &t
		}
		if !w.keeps(lj.Text, posted) {
			continue
		}

		postings = append(postings, model.RawPosting{
			ID:       postingID(a.source, lj.ID),
			Title:    lj.Text,
			Link:     lj.HostedURL,
			Posted:   posted,
			Source:   a.source,
			Company:  a.companyName,
			Location: location,
			Contract: lj.Categories.Commitment,
		})
	}

	return postings, nil
}
