package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// ReactionCacheStore caches aggregate counts in Redis, keyed by content id.
// It fronts the store-derived tally; a miss or decode failure just falls
// through to a recount.
type ReactionCacheStore struct {
	rdb       *redis.Client
	countsTTL time.Duration
}

// NewReactionCacheStore creates a cache store with a short TTL; toggles
// invalidate eagerly so the TTL only bounds staleness after missed
// invalidations.
func NewReactionCacheStore(rdb *redis.Client) *ReactionCacheStore {
	return &ReactionCacheStore{
		rdb:       rdb,
		countsTTL: 15 * time.Minute,
	}
}

func countsKey(contentID string) string { return fmt.Sprintf("reactions:counts:%s", contentID) }

// GetCounts returns the cached counts for a content id, if present.
func (c *ReactionCacheStore) GetCounts(ctx context.Context, contentID string) (entity.AggregateCounts, bool, error) {
	b, err := c.rdb.Get(ctx, countsKey(contentID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var counts entity.AggregateCounts
	if err := json.Unmarshal(b, &counts); err != nil {
		return nil, false, nil
	}
	return counts, true, nil
}

// SetCounts stores the counts for a content id.
func (c *ReactionCacheStore) SetCounts(ctx context.Context, contentID string, counts entity.AggregateCounts) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, countsKey(contentID), data, c.countsTTL).Err()
}

// InvalidateCounts drops the cached counts for a content id.
func (c *ReactionCacheStore) InvalidateCounts(ctx context.Context, contentID string) error {
	return c.rdb.Del(ctx, countsKey(contentID)).Err()
}

var _ contract.IReactionCache = (*ReactionCacheStore)(nil)
