package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

const greenhouseBaseURL = "https://boards-api.greenhouse.io/v1/boards"

// greenhouseJob represents a single job in the Greenhouse API response.
type greenhouseJob struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Location    greenhouseLocation `json:"location"`
	AbsoluteURL string             `json:"absolute_url"`
	UpdatedAt   string             `json:"updated_at"`
}

type greenhouseLocation struct {
	Name string `json:"name"`
}

// greenhouseResponse is the top-level Greenhouse jobs API response.
type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

// GreenhouseAdapter fetches postings from the Greenhouse public boards API.
type GreenhouseAdapter struct {
	source      string
	boardToken  string
	companyName string
	client      *http.Client
	now         func() time.Time
}

// NewGreenhouseAdapter creates a new adapter for a Greenhouse board.
func NewGreenhouseAdapter(source, boardToken, companyName string, client *http.Client) *GreenhouseAdapter {
	return &GreenhouseAdapter{
		source:      source,
		boardToken:  boardToken,
		companyName: companyName,
		client:      client,
		now:         time.Now,
	}
}

// Fetch retrieves the board and keeps the postings matching keyword that were
// updated within the last hours, up to limit.
func (a *GreenhouseAdapter) Fetch(ctx context.Context, keyword string, hours, limit int) ([]model.RawPosting, error) {
	url := fmt.Sprintf("%s/%s/jobs", greenhouseBaseURL, a.boardToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("greenhouse fetch for %s: %w", a.boardToken, err)
	}

	var ghResp greenhouseResponse
	if err := doJSON(a.client, req, "greenhouse fetch for "+a.boardToken, &ghResp); err != nil {
		return nil, err
	}

	w := newWindow(keyword, hours, limit, a.now())
	postings := make([]model.RawPosting, 0, len(ghResp.Jobs))
	for _, gj := range ghResp.Jobs {
		if w.full(len(postings)) {
			break
		}

		var posted *time.Time
		if gj.UpdatedAt != "" {
			if t, err := time.Parse(time.RFC3339, gj.UpdatedAt); err == nil {
				t = t.UTC()
				posted = &t
			}
		}
		if !w.keeps(gj.Title, posted) {
			continue
		}

		postings = append(postings, model.RawPosting{
			ID:       postingID(a.source, strconv.FormatInt(gj.ID, 10)),
			Title:    gj.Title,
			Link:     gj.AbsoluteURL,
			Posted:   posted,
			Source:   a.source,
			Company:  a.companyName,
			Location: gj.Location.Name,
		})
	}

	return postings, nil
}
