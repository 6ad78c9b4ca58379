package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

const workdayPageSize = 20

// workdayListingResponse is the response from the CXS jobs search endpoint.
// Workday only reports total on the first page.
type workdayListingResponse struct {
	Total       int              `json:"total"`
	JobPostings []workdayListing `json:"jobPostings"`
}

type workdayListing struct {
	JobPostingID  string   `json:"jobPostingId"`
	Title         string   `json:"title"`
	ExternalPath  string   `json:"externalPath"`
	LocationsText string   `json:"locationsText"`
	PostedOn      string   `json:"postedOn"`
	BulletFields  []string `json:"bulletFields"`
}

// workdayListingRequest is the POST body for the CXS jobs search endpoint.
type workdayListingRequest struct {
	AppliedFacets map[string][]string `json:"appliedFacets"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
	SearchText    string              `json:"searchText"`
}

// workdayDetailResponse is the response from the CXS job detail endpoint.
type workdayDetailResponse struct {
	JobPostingInfo workdayJobDetail `json:"jobPostingInfo"`
}

type workdayJobDetail struct {
	JobReqID            string   `json:"jobReqId"`
	Title               string   `json:"title"`
	Location            string   `json:"location"`
	TimeType            string   `json:"timeType"`
	ExternalURL         string   `json:"externalUrl"`
	AdditionalLocations []string `json:"additionalLocations"`
}

// WorkdayConfig locates a Workday career site: postings live under
// {BaseURL}/{Site} and the search API under {BaseURL}/wday/cxs/{Tenant}/{Site}.
type WorkdayConfig struct {
	BaseURL string
	Tenant  string
	Site    string
	Facets  map[string][]string // applied search facets, e.g. locationCountry
	Details bool                // fetch each kept posting's detail for location and time type
}

// WorkdayAdapter fetches postings from a Workday career site through its CXS
// search API.
type WorkdayAdapter struct {
	source      string
	companyName string
	cfg         WorkdayConfig
	client      *http.Client
	now         func() time.Time
}

// NewWorkdayAdapter creates a new adapter for a Workday career site.
func NewWorkdayAdapter(source, companyName string, cfg WorkdayConfig, client *http.Client) *WorkdayAdapter {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &WorkdayAdapter{
		source:      source,
		companyName: companyName,
		cfg:         cfg,
		client:      client,
		now:         time.Now,
	}
}

func (a *WorkdayAdapter) cxsRoot() string {
	return fmt.Sprintf("%s/wday/cxs/%s/%s", a.cfg.BaseURL, a.cfg.Tenant, a.cfg.Site)
}

// Fetch pages through the search results for keyword (20 per page) and keeps
// postings published within the last hours, up to limit. Listings come newest
// first, so paging stops at the first page that ends with a stale listing.
func (a *WorkdayAdapter) Fetch(ctx context.Context, keyword string, hours, limit int) ([]model.RawPosting, error) {
	now := a.now()
	w := newWindow(keyword, hours, limit, now)

	var postings []model.RawPosting
	offset, total := 0, 0
	for {
		page, err := a.fetchPage(ctx, keyword, offset)
		if err != nil {
			return nil, err
		}
		if offset == 0 {
			total = page.Total
		}
		if len(page.JobPostings) == 0 {
			break
		}

		for _, l := range page.JobPostings {
			posted := parsePostedOn(l.PostedOn, now)
			if posted == nil && hours > 0 {
				continue
			}
			if !w.keeps(l.Title, posted) {
				continue
			}
			p := a.postingFromListing(l, posted)
			if a.cfg.Details {
				if err := a.addDetail(ctx, l, &p); err != nil {
					return nil, err
				}
			}
			postings = append(postings, p)
			if w.full(len(postings)) {
				return postings, nil
			}
		}

		// An undated tail ("Posted 30+ Days Ago") is as stale as a dated one.
		if hours > 0 {
			last := parsePostedOn(page.JobPostings[len(page.JobPostings)-1].PostedOn, now)
			if last == nil || w.stale(last) {
				break
			}
		}
		offset += len(page.JobPostings)
		if total > 0 && offset >= total {
			break
		}
	}

	return postings, nil
}

func (a *WorkdayAdapter) fetchPage(ctx context.Context, keyword string, offset int) (*workdayListingResponse, error) {
	facets := a.cfg.Facets
	if facets == nil {
		facets = map[string][]string{}
	}
	body := workdayListingRequest{
		AppliedFacets: facets,
		Limit:         workdayPageSize,
		Offset:        offset,
		SearchText:    keyword,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("workday listing marshal for %s: %w", a.source, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cxsRoot()+"/jobs", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("workday listing request for %s: %w", a.source, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var listResp workdayListingResponse
	if err := doJSON(a.client, req, "workday listing fetch for "+a.source, &listResp); err != nil {
		return nil, err
	}
	return &listResp, nil
}

// postingFromListing builds a posting from listing-level data only.
func (a *WorkdayAdapter) postingFromListing(l workdayListing, posted *time.Time) model.RawPosting {
	native := l.JobPostingID
	if native == "" {
		native = path.Base(l.ExternalPath)
	}
	return model.RawPosting{
		ID:       postingID(a.source, native),
		Title:    l.Title,
		Link:     a.cfg.BaseURL + "/" + a.cfg.Site + l.ExternalPath,
		Posted:   posted,
		Source:   a.source,
		Company:  a.companyName,
		Location: l.LocationsText,
	}
}

// addDetail overlays the full location list and time type from the detail
// endpoint.
func (a *WorkdayAdapter) addDetail(ctx context.Context, l workdayListing, p *model.RawPosting) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cxsRoot()+l.ExternalPath, nil)
	if err != nil {
		return fmt.Errorf("workday detail request for %s: %w", a.source, err)
	}

	var detail workdayDetailResponse
	if err := doJSON(a.client, req, "workday detail fetch for "+a.source, &detail); err != nil {
		return err
	}

	info := detail.JobPostingInfo
	if info.Location != "" {
		p.Location = info.Location
		if len(info.AdditionalLocations) > 0 {
			p.Location += "; " + strings.Join(info.AdditionalLocations, "; ")
		}
	}
	if info.ExternalURL != "" {
		p.Link = info.ExternalURL
	}
	p.Contract = info.TimeType
	return nil
}

var daysAgoRegex = regexp.MustCompile(`(?i)(\d+)\s+(?:days?|jours?)\b`)

// parsePostedOn converts a Workday "postedOn" value to an approximate time:
// an ISO timestamp, "Posted N Days Ago", "Posted Today" or "Posted Yesterday"
// and their French forms. "Posted 30+ Days Ago" and anything unknown yield nil.
func parsePostedOn(postedOn string, now time.Time) *time.Time {
	s := strings.TrimSpace(postedOn)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(s, "Z")); err == nil {
		return &t
	}

	now = now.UTC()
	if m := daysAgoRegex.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		t := now.Add(-time.Duration(n) * 24 * time.Hour)
		return &t
	}

	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "today"), strings.Contains(lower, "aujourd"):
		return &now
	case strings.Contains(lower, "yesterday"), strings.Contains(lower, "hier"):
		t := now.Add(-24 * time.Hour)
		return &t
	}
	return nil
}
