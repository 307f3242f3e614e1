package mocks

import (
	"context"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
	"github.com/ahlgren-media/reactions/internal/usecase"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// MockReactionUsecase is an in-memory mock of the IReactionUseCase interface.
type MockReactionUsecase struct {
	// Control mock behavior
	ShouldFailToggle bool
	ShouldFailCounts bool
	NotAllowedIDs    map[string]bool

	// Configured vocabulary and reaction state
	Types []entity.ReactionType
	Sets  map[string]map[string]entity.ReactionType
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		Types:         []entity.ReactionType{"laugh", "like", "love"},
		Sets:          make(map[string]map[string]entity.ReactionType),
		NotAllowedIDs: make(map[string]bool),
	}
}

func (m *MockReactionUsecase) Toggle(ctx context.Context, contentID, actorID string, requestedType entity.ReactionType) (entity.AggregateCounts, error) {
	if m.ShouldFailToggle {
		return nil, contract.ErrStoreUnavailable
	}
	if contentID == "" || requestedType == "" {
		return nil, usecase.ErrInvalidInput
	}
	if actorID == "" {
		return nil, usecase.ErrUnauthenticated
	}
	if !m.typeValid(requestedType) {
		return nil, &usecase.InvalidTypeError{ContentID: contentID, Type: string(requestedType)}
	}
	if m.NotAllowedIDs[contentID] {
		return nil, usecase.ErrNotAllowed
	}
	set := m.Sets[contentID]
	if set == nil {
		set = make(map[string]entity.ReactionType)
		m.Sets[contentID] = set
	}
	set[actorID] = requestedType
	return m.tally(contentID), nil
}

func (m *MockReactionUsecase) Counts(ctx context.Context, contentID string) (entity.AggregateCounts, error) {
	if m.ShouldFailCounts {
		return nil, contract.ErrStoreUnavailable
	}
	return m.tally(contentID), nil
}

func (m *MockReactionUsecase) UserReaction(ctx context.Context, contentID, actorID string) (entity.ReactionType, bool, error) {
	t, ok := m.Sets[contentID][actorID]
	return t, ok, nil
}

func (m *MockReactionUsecase) BulkStats(ctx context.Context, contentIDs []string) (map[string]entity.ContentStats, error) {
	if m.ShouldFailCounts {
		return nil, contract.ErrStoreUnavailable
	}
	stats := make(map[string]entity.ContentStats, len(contentIDs))
	for _, id := range contentIDs {
		counts := m.tally(id)
		stats[id] = entity.ContentStats{ContentID: id, Reactions: counts, Total: counts.Total()}
	}
	return stats, nil
}

func (m *MockReactionUsecase) AugmentContentList(ctx context.Context, items []entity.ContentItem, actorID string) ([]usecasecontract.AugmentedContent, error) {
	augmented := make([]usecasecontract.AugmentedContent, 0, len(items))
	for _, item := range items {
		counts := m.tally(item.ID)
		withTotal := make(map[string]int, len(counts)+1)
		for t, n := range counts {
			withTotal[string(t)] = n
		}
		withTotal["total"] = counts.Total()

		var userReaction interface{} = false
		if t, ok := m.Sets[item.ID][actorID]; ok {
			userReaction = string(t)
		}
		augmented = append(augmented, usecasecontract.AugmentedContent{
			Content:        item,
			ReactionCounts: withTotal,
			UserReaction:   userReaction,
		})
	}
	return augmented, nil
}

func (m *MockReactionUsecase) typeValid(t entity.ReactionType) bool {
	for _, known := range m.Types {
		if known == t {
			return true
		}
	}
	return false
}

func (m *MockReactionUsecase) tally(contentID string) entity.AggregateCounts {
	return entity.CountReactions(entity.ReactionSet{
		ContentID: contentID,
		Reactions: m.Sets[contentID],
	}, m.Types)
}
