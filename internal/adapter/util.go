package adapter

import (
	"strings"
	"time"

	"github.com/amishk599/bankradar/internal/textnorm"
)

// window holds the keyword, freshness and size restrictions of one fetch.
type window struct {
	keyword string
	cutoff  time.Time // zero means no freshness restriction
	limit   int       // zero means unlimited
}

func newWindow(keyword string, hours, limit int, now time.Time) window {
	w := window{keyword: textnorm.Prep(strings.TrimSpace(keyword)), limit: limit}
	if hours > 0 {
		w.cutoff = now.Add(-time.Duration(hours) * time.Hour)
	}
	return w
}

// keeps reports whether a posting with this title and posted time belongs in
// the window. Postings without a date are kept.
func (w window) keeps(title string, posted *time.Time) bool {
	if w.keyword != "" && !strings.Contains(textnorm.Prep(title), w.keyword) {
		return false
	}
	if posted != nil && !w.cutoff.IsZero() && posted.Before(w.cutoff) {
		return false
	}
	return true
}

// stale reports whether posted falls before the window.
func (w window) stale(posted *time.Time) bool {
	return posted != nil && !w.cutoff.IsZero() && posted.Before(w.cutoff)
}

// full reports whether n postings reach the limit.
func (w window) full(n int) bool {
	return w.limit > 0 && n >= w.limit
}

// postingID namespaces a native ID with the lowercased source code.
func postingID(source, native string) string {
	return strings.ToLower(source) + "-" + native
}
