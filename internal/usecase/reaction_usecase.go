package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
	"github.com/ahlgren-media/reactions/internal/infrastructure/metrics"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// maxPutRetries bounds the optimistic-write loop in Toggle. Contention on a
// single content id is rare and short-lived, so a handful of retries is
// plenty before giving up.
const maxPutRetries = 5

// ReactionUsecase is the single write entry point for reactions plus the
// read-side aggregation over the store.
type ReactionUsecase struct {
	store       contract.IReactionStore
	contentRepo contract.IContentRepository
	config      usecasecontract.IConfigProvider
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
	cache       contract.IReactionCache
}

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(store contract.IReactionStore, contentRepo contract.IContentRepository, config usecasecontract.IConfigProvider, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *ReactionUsecase {
	return &ReactionUsecase{
		store:       store,
		contentRepo: contentRepo,
		config:      config,
		validator:   validator,
		logger:      logger,
	}
}

// SetReactionCache attaches an optional counts cache.
func (u *ReactionUsecase) SetReactionCache(cache contract.IReactionCache) {
	u.cache = cache
}

// Toggle applies an actor's reaction to a content item and returns the
// refreshed aggregate counts. Re-clicking the actor's current type is a
// no-op; a different type replaces the previous one, so an actor holds at
// most one reaction per content item at all times.
func (u *ReactionUsecase) Toggle(ctx context.Context, contentID, actorID string, requestedType entity.ReactionType) (entity.AggregateCounts, error) {
	if contentID == "" || requestedType == "" {
		return nil, ErrInvalidInput
	}
	if err := u.validator.ValidateContentID(contentID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if actorID == "" {
		return nil, ErrUnauthenticated
	}
	if err := u.validator.ValidateReactionKey(string(requestedType)); err != nil {
		return nil, &InvalidTypeError{ContentID: contentID, Type: string(requestedType)}
	}
	if !u.config.IsReactionTypeValid(requestedType) {
		return nil, &InvalidTypeError{ContentID: contentID, Type: string(requestedType)}
	}
	if err := u.checkAllowed(ctx, contentID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxPutRetries; attempt++ {
		set, err := u.store.Get(ctx, contentID)
		if err != nil {
			return nil, fmt.Errorf("toggle read for %s: %w", contentID, err)
		}

		if current, ok := set.Reaction(actorID); ok && current == requestedType {
			metrics.IncToggleNoop()
			return entity.CountReactions(set, u.config.GetReactionTypeKeys()), nil
		}

		set.Reactions[actorID] = requestedType
		if err := u.store.Put(ctx, set); err != nil {
			if errors.Is(err, contract.ErrRevisionConflict) {
				metrics.IncToggleConflict()
				continue
			}
			return nil, fmt.Errorf("toggle write for %s: %w", contentID, err)
		}

		metrics.IncToggleApplied()
		u.invalidateCache(ctx, contentID)
		return entity.CountReactions(set, u.config.GetReactionTypeKeys()), nil
	}

	return nil, fmt.Errorf("toggle for %s exhausted retries: %w", contentID, contract.ErrRevisionConflict)
}

// Counts tallies one content item, zero-filled over the configured types.
// Unknown content ids yield all-zero counts, never an error.
func (u *ReactionUsecase) Counts(ctx context.Context, contentID string) (entity.AggregateCounts, error) {
	if u.cache != nil {
		counts, ok, err := u.cache.GetCounts(ctx, contentID)
		if err != nil {
			u.logger.Warnf("counts cache read for %s: %v", contentID, err)
		} else if ok {
			metrics.IncCountsHit()
			return counts, nil
		}
		metrics.IncCountsMiss()
	}

	set, err := u.store.Get(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("counting reactions for %s: %w", contentID, err)
	}
	counts := entity.CountReactions(set, u.config.GetReactionTypeKeys())

	if u.cache != nil {
		if err := u.cache.SetCounts(ctx, contentID, counts); err != nil {
			u.logger.Warnf("counts cache write for %s: %v", contentID, err)
		}
	}
	return counts, nil
}

// UserReaction returns the actor's active reaction on a content item, if any.
func (u *ReactionUsecase) UserReaction(ctx context.Context, contentID, actorID string) (entity.ReactionType, bool, error) {
	if actorID == "" {
		return "", false, nil
	}
	set, err := u.store.Get(ctx, contentID)
	if err != nil {
		return "", false, fmt.Errorf("reading reaction of %s on %s: %w", actorID, contentID, err)
	}
	t, ok := set.Reaction(actorID)
	return t, ok, nil
}

// BulkStats returns counts and totals for exactly the given ids. Ids without
// reactions are present with zero-filled counts, never omitted.
func (u *ReactionUsecase) BulkStats(ctx context.Context, contentIDs []string) (map[string]entity.ContentStats, error) {
	stats := make(map[string]entity.ContentStats, len(contentIDs))
	for _, id := range contentIDs {
		if id == "" {
			continue
		}
		counts, err := u.Counts(ctx, id)
		if err != nil {
			return nil, err
		}
		stats[id] = entity.ContentStats{
			ContentID: id,
			Reactions: counts,
			Total:     counts.Total(),
		}
	}
	return stats, nil
}

// AugmentContentList attaches the two derived reaction fields to each item of
// a content listing. With an empty actor id, user_reaction is false for every
// item.
func (u *ReactionUsecase) AugmentContentList(ctx context.Context, items []entity.ContentItem, actorID string) ([]usecasecontract.AugmentedContent, error) {
	augmented := make([]usecasecontract.AugmentedContent, 0, len(items))
	for _, item := range items {
		counts, err := u.Counts(ctx, item.ID)
		if err != nil {
			return nil, err
		}

		countsWithTotal := make(map[string]int, len(counts)+1)
		for t, n := range counts {
			countsWithTotal[string(t)] = n
		}
		countsWithTotal["total"] = counts.Total()

		var userReaction interface{} = false
		if actorID != "" {
			if t, ok, err := u.UserReaction(ctx, item.ID, actorID); err != nil {
				return nil, err
			} else if ok {
				userReaction = string(t)
			}
		}

		augmented = append(augmented, usecasecontract.AugmentedContent{
			Content:        item,
			ReactionCounts: countsWithTotal,
			UserReaction:   userReaction,
		})
	}
	return augmented, nil
}

// checkAllowed enforces the content allow-list: the item must exist, be
// published and belong to an allowed content type.
func (u *ReactionUsecase) checkAllowed(ctx context.Context, contentID string) error {
	item, err := u.contentRepo.GetContentByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, contract.ErrContentNotFound) {
			return ErrNotAllowed
		}
		return fmt.Errorf("checking content %s: %w", contentID, err)
	}
	if !item.Published() || !u.config.IsContentTypeAllowed(item.Type) {
		return ErrNotAllowed
	}
	return nil
}

func (u *ReactionUsecase) invalidateCache(ctx context.Context, contentID string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateCounts(ctx, contentID); err != nil {
		u.logger.Warnf("counts cache invalidation for %s: %v", contentID, err)
	}
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)
