package contract

import (
	"context"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// IReactionCache is an optional read-side cache for aggregate counts, keyed
// by content id and invalidated on every toggle to that id. Never the system
// of record.
type IReactionCache interface {
	GetCounts(ctx context.Context, contentID string) (entity.AggregateCounts, bool, error)
	SetCounts(ctx context.Context, contentID string, counts entity.AggregateCounts) error
	InvalidateCounts(ctx context.Context, contentID string) error
}
