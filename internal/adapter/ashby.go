package adapter

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

const ashbyBaseURL = "https://api.ashbyhq.com/posting-api/job-board"

// ashbyJob represents a single job in the Ashby API response.
type ashbyJob struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Location       string `json:"location"`
	EmploymentType string `json:"employmentType"`
	JobUrl         string `json:"jobUrl"`
	PublishedAt    string `json:"publishedAt"`
	IsListed       bool   `json:"isListed"`
}

// ashbyResponse is the top-level Ashby job board API response.
type ashbyResponse struct {
	Jobs []ashbyJob `json:"jobs"`
}

// AshbyAdapter fetches postings from the Ashby public job board API.
type AshbyAdapter struct {
	source      string
	boardToken  string
	companyName string
	client      *http.Client
	now         func() time.Time
}

// NewAshbyAdapter creates a new adapter for an Ashby job board.
func NewAshbyAdapter(source, boardToken, companyName string, client *http.Client) *AshbyAdapter {
	return &AshbyAdapter{
		source:      source,
		boardToken:  boardToken,
		companyName: companyName,
		client:      client,
		now:         time.Now,
	}
}

// Fetch retrieves the listed jobs of the board that match keyword and were
// published within the last hours, up to limit.
func (a *AshbyAdapter) Fetch(ctx context.Context, keyword string, hours, limit int) ([]model.RawPosting, error) {
	url := fmt.Sprintf("%s/%s", ashbyBaseURL, a.boardToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ashby fetch for %s: %w", a.boardToken, err)
	}

	var ashbyResp ashbyResponse
	if err := doJSON(a.client, req, "ashby fetch for "+a.boardToken, &ashbyResp); err != nil {
		return nil, err
	}

	w := newWindow(keyword, hours, limit, a.now())
	postings := make([]model.RawPosting, 0, len(ashbyResp.Jobs))
	for _, aj := range ashbyResp.Jobs {
		if w.full(len(postings)) {
			break
		}
		if !aj.IsListed {
			continue
		}

		var posted *time.Time
		if aj.PublishedAt != "" {
			if t, err := time.Parse(time.RFC3339, aj.PublishedAt); err == nil {
				t = t.UTC()
				posted = &t
			}
		}
		if !w.keeps(aj.Title, posted) {
			continue
		}

		native := aj.ID
		if native == "" {
			native = path.Base(aj.JobUrl)
		}
		postings = append(postings, model.RawPosting{
			ID:       postingID(a.source, native),
			Title:    aj.Title,
			Link:     aj.JobUrl,
			Posted:   posted,
			Source:   a.source,
			Company:  a.companyName,
			Location: aj.Location,
			Contract: aj.EmploymentType,
		})
	}

	return postings, nil
}
