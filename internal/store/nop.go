package store

import (
	"context"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

// NopStore is a no-op store used in dry-run mode. Every posting is new and
// nothing is written, so a dry run notifies about everything it fetches.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) IsNew(ctx context.Context, id string) (bool, error)                 { return true, nil }
func (s *NopStore) IsNewByLink(ctx context.Context, link string) (bool, error)         { return true, nil }
func (s *NopStore) Save(ctx context.Context, p model.EnrichedPosting) error            { return nil }
func (s *NopStore) EvictOlderThan(ctx context.Context, w time.Duration) (int64, error) { return 0, nil }
