package notifier

import (
	"context"
	"log/slog"

	"github.com/amishk599/bankradar/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes new postings to the given logger as structured messages.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each posting via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the posting. It never fails.
func (n *LogNotifier) Notify(_ context.Context, p model.EnrichedPosting) error {
	args := []any{
		"source", p.Source,
		"company", p.Company,
		"title", p.Title,
		"category", p.Category,
		"contract", p.ContractType,
		"link", p.Link,
	}
	if p.Location != "" {
		args = append(args, "location", p.Location)
	}
	if p.CountryCode != "" {
		args = append(args, "country", p.CountryCode)
	}
	if p.Keyword != "" {
		args = append(args, "keyword", p.Keyword)
	}
	if p.Posted != nil {
		args = append(args, "posted", p.Posted.Format("2006-01-02"))
	}
	n.logger.Info("new posting", args...)
	return nil
}
