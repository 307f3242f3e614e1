package usecasecontract

import (
	"context"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// AugmentedContent is a content listing entry with the two derived reaction
// fields collaborators embed into their own payloads.
type AugmentedContent struct {
	Content        entity.ContentItem `json:"content"`
	ReactionCounts map[string]int     `json:"reaction_counts"`
	UserReaction   interface{}        `json:"user_reaction"`
}

// IReactionUseCase is the write entry point plus the read/embed interface.
type IReactionUseCase interface {
	// Toggle applies an actor's reaction to a content item and returns the
	// refreshed aggregate counts.
	Toggle(ctx context.Context, contentID, actorID string, requestedType entity.ReactionType) (entity.AggregateCounts, error)

	// Counts tallies one content item, zero-filled over the configured types.
	Counts(ctx context.Context, contentID string) (entity.AggregateCounts, error)

	// UserReaction returns the actor's active reaction, if any.
	UserReaction(ctx context.Context, contentID, actorID string) (entity.ReactionType, bool, error)

	// BulkStats returns counts and totals for exactly the given ids; ids with
	// no reactions yield zero-filled entries.
	BulkStats(ctx context.Context, contentIDs []string) (map[string]entity.ContentStats, error)

	// AugmentContentList attaches reaction_counts and user_reaction to each
	// item of a content listing. actorID may be empty (user_reaction false).
	AugmentContentList(ctx context.Context, items []entity.ContentItem, actorID string) ([]AugmentedContent, error)
}

// IRankingUseCase answers "top N content by total reactions".
type IRankingUseCase interface {
	TopByReactions(ctx context.Context, contentType string, limit int) ([]entity.RankedContent, error)
}
