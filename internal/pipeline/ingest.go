package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amishk599/bankradar/internal/filter"
	"github.com/amishk599/bankradar/internal/model"
)

// IngestStats counts what happened to each candidate of a batch.
type IngestStats struct {
	Seen       int // candidates examined
	New        int // saved and handed to the notifier
	Duplicates int // already stored by id or link
	Rejected   int // title outside the French/English alphabet
	Filtered   int // dropped by the configured posting filter
	NotifyErrs int // saved, but the notifier failed
}

// IngestConfig holds the optional parts of an Ingester.
type IngestConfig struct {
	Filter        model.PostingFilter    // nil keeps everything
	Language      *filter.LanguageFilter // nil disables the language check
	ThrottleEvery int                    // pause after this many new postings, 0 disables
	Throttle      time.Duration
}

// Ingester persists candidates one at a time and notifies each new posting
// exactly once.
type Ingester struct {
	store    model.Store
	notifier model.Notifier
	enricher *Enricher
	cfg      IngestConfig
	logger   *slog.Logger
	sleep    func(context.Context, time.Duration) error
}

// NewIngester creates an Ingester wired with all its dependencies.
func NewIngester(store model.Store, notifier model.Notifier, enricher *Enricher, cfg IngestConfig, logger *slog.Logger) *Ingester {
	return &Ingester{
		store:    store,
		notifier: notifier,
		enricher: enricher,
		cfg:      cfg,
		logger:   logger,
		sleep:    sleepCtx,
	}
}

// Ingest runs the sequential part of a cycle. A candidate is accepted only
// when neither its id nor its link is stored yet. Store failures abort the
// batch; everything else skips the candidate and carries on.
func (in *Ingester) Ingest(ctx context.Context, candidates []model.Candidate) (IngestStats, error) {
	var stats IngestStats
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Seen++
		c.RawPosting = c.RawPosting.Normalize()

		isNew, err := in.isNew(ctx, c.RawPosting)
		if err != nil {
			return stats, err
		}
		if !isNew {
			stats.Duplicates++
			in.logger.Debug("already stored", "id", c.ID, "title", c.Title, "company", c.Company)
			continue
		}
		if in.cfg.Language != nil && !in.cfg.Language.Match(c.RawPosting) {
			stats.Rejected++
			in.logger.Info("rejected title",
				"title", c.Title,
				"company", c.Company,
				"chars", in.cfg.Language.Offending(c.Title),
			)
			continue
		}
		if in.cfg.Filter != nil && !in.cfg.Filter.Match(c.RawPosting) {
			stats.Filtered++
			continue
		}

		ep := in.enricher.Enrich(c)
		if err := in.store.Save(ctx, ep); err != nil {
			if errors.Is(err, model.ErrDuplicate) {
				stats.Duplicates++
				continue
			}
			return stats, fmt.Errorf("saving %s: %w", ep.ID, err)
		}
		stats.New++
		in.logger.Info("new posting saved",
			"id", ep.ID,
			"title", ep.Title,
			"company", ep.Company,
			"category", ep.Category,
		)

		if err := in.notifier.Notify(ctx, ep); err != nil {
			stats.NotifyErrs++
			in.logger.Error("notification failed", "id", ep.ID, "error", err)
		}

		if in.cfg.ThrottleEvery > 0 && in.cfg.Throttle > 0 && stats.New%in.cfg.ThrottleEvery == 0 {
			if err := in.sleep(ctx, in.cfg.Throttle); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

func (in *Ingester) isNew(ctx context.Context, p model.RawPosting) (bool, error) {
	byID, err := in.store.IsNew(ctx, p.ID)
	if err != nil {
		return false, fmt.Errorf("checking id %s: %w", p.ID, err)
	}
	if !byID {
		return false, nil
	}
	byLink, err := in.store.IsNewByLink(ctx, p.Link)
	if err != nil {
		return false, fmt.Errorf("checking link %s: %w", p.Link, err)
	}
	return byLink, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
