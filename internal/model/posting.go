package model

import (
	"context"
	"time"
)

// RawPosting is a job listing as returned by a source adapter, before any
// enrichment. Only ID, Title, Link and Source are guaranteed.
type RawPosting struct {
	ID       string     `json:"id"`                 // source-local, may change scheme between runs
	Title    string     `json:"title"`              // job title as published
	Link     string     `json:"link"`               // canonical URL
	Posted   *time.Time `json:"posted,omitempty"`   // nullable (not every site exposes it)
	Source   string     `json:"source"`             // site code, e.g. "BNPP"
	Company  string     `json:"company,omitempty"`  // defaults to Source
	Location string     `json:"location,omitempty"` // free text
	Contract string     `json:"contract,omitempty"` // raw contract wording scraped from the page
}

// Normalize fills defaulted fields. Company falls back to Source, a missing ID
// to the link, and a zero posted time becomes unknown.
func (p RawPosting) Normalize() RawPosting {
	if p.Company == "" {
		p.Company = p.Source
	}
	if p.ID == "" {
		p.ID = p.Link
	}
	if p.Posted != nil && p.Posted.IsZero() {
		p.Posted = nil
	}
	return p
}

// Candidate is a raw posting tagged with the search keyword of the task that
// produced it. An empty keyword means the task was unfiltered.
type Candidate struct {
	RawPosting
	Keyword string `json:"keyword,omitempty"`
}

// EnrichedPosting is a candidate with its derived taxonomy fields, ready to be
// persisted. Empty CountryCode means no explicit country signal was found.
type EnrichedPosting struct {
	Candidate
	Category     string
	ContractType string
	CountryCode  string
	CountryName  string
}

// Fetcher retrieves postings from one source, restricted to the keyword (empty
// means all), to postings newer than hours, and to at most limit records.
type Fetcher interface {
	Fetch(ctx context.Context, keyword string, hours, limit int) ([]RawPosting, error)
}

// Store persists enriched postings and answers the dual existence check.
type Store interface {
	IsNew(ctx context.Context, id string) (bool, error)
	IsNewByLink(ctx context.Context, link string) (bool, error)
	Save(ctx context.Context, p EnrichedPosting) error
	EvictOlderThan(ctx context.Context, window time.Duration) (int64, error)
}

// Notifier is handed each newly persisted posting exactly once.
type Notifier interface {
	Notify(ctx context.Context, p EnrichedPosting) error
}

// PostingFilter decides whether a posting should be considered at all.
type PostingFilter interface {
	Match(p RawPosting) bool
}
