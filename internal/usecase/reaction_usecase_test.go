package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
	"github.com/ahlgren-media/reactions/internal/infrastructure/validator"
	"github.com/ahlgren-media/reactions/internal/usecase"
)

func newReactionFixture() (*usecase.ReactionUsecase, *memReactionStore, *memContentRepo) {
	store := newMemReactionStore()
	contentRepo := newMemContentRepo()
	contentRepo.addContent("c1", "post", entity.ContentStatusPublished)
	contentRepo.addContent("c2", "post", entity.ContentStatusPublished)
	uc := usecase.NewReactionUsecase(store, contentRepo, newStubConfig(), validator.NewValidator(), nopLogger{})
	return uc, store, contentRepo
}

func TestToggleCreatesReaction(t *testing.T) {
	uc, _, _ := newReactionFixture()

	counts, err := uc.Toggle(context.Background(), "c1", "42", "like")

	require.NoError(t, err)
	assert.Equal(t, 1, counts["like"])
	assert.Equal(t, 0, counts["love"])
	assert.Equal(t, 0, counts["laugh"])
	assert.Equal(t, 1, counts.Total())
}

func TestToggleSameTypeIsNoOp(t *testing.T) {
	uc, store, _ := newReactionFixture()

	_, err := uc.Toggle(context.Background(), "c1", "42", "like")
	require.NoError(t, err)
	writesAfterFirst := store.putCalls

	counts, err := uc.Toggle(context.Background(), "c1", "42", "like")
	require.NoError(t, err)

	assert.Equal(t, writesAfterFirst, store.putCalls, "re-click of the same type must not write")
	assert.Equal(t, 1, counts["like"])
	assert.Equal(t, 1, counts.Total())
}

func TestToggleReplacesType(t *testing.T) {
	uc, _, _ := newReactionFixture()

	_, err := uc.Toggle(context.Background(), "c1", "42", "like")
	require.NoError(t, err)
	_, err = uc.Toggle(context.Background(), "c1", "99", "like")
	require.NoError(t, err)

	counts, err := uc.Toggle(context.Background(), "c1", "42", "love")
	require.NoError(t, err)

	assert.Equal(t, 1, counts["like"], "other actors' reactions stay put")
	assert.Equal(t, 1, counts["love"])
	assert.Equal(t, 2, counts.Total())
}

func TestToggleNeverExceedsOneRecordPerActor(t *testing.T) {
	uc, store, _ := newReactionFixture()

	for _, reaction := range []entity.ReactionType{"like", "like", "love", "laugh", "laugh"} {
		_, err := uc.Toggle(context.Background(), "c1", "42", reaction)
		require.NoError(t, err)
	}

	set, err := store.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, set.Reactions, 1)
	assert.Equal(t, entity.ReactionType("laugh"), set.Reactions["42"])
}

func TestCountsMatchStoredRecords(t *testing.T) {
	uc, store, _ := newReactionFixture()

	actors := []string{"a1", "a2", "a3", "a4", "a5"}
	reactionTypes := []entity.ReactionType{"like", "love", "like", "laugh", "like"}
	for i, actor := range actors {
		_, err := uc.Toggle(context.Background(), "c1", actor, reactionTypes[i])
		require.NoError(t, err)
	}

	counts, err := uc.Counts(context.Background(), "c1")
	require.NoError(t, err)
	set, err := store.Get(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, len(set.Reactions), counts.Total(), "aggregate must reproduce the raw records")
	recount := entity.CountReactions(set, newStubConfig().GetReactionTypeKeys())
	assert.Equal(t, recount, counts)
}

func TestToggleInvalidType(t *testing.T) {
	uc, _, _ := newReactionFixture()

	_, err := uc.Toggle(context.Background(), "c1", "42", "grumpy")

	var invalidType *usecase.InvalidTypeError
	require.ErrorAs(t, err, &invalidType)
	assert.Equal(t, "c1", invalidType.ContentID)
	assert.Equal(t, "grumpy", invalidType.Type)
}

func TestToggleRejectsMissingInput(t *testing.T) {
	uc, _, _ := newReactionFixture()

	_, err := uc.Toggle(context.Background(), "", "42", "like")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)

	_, err = uc.Toggle(context.Background(), "c1", "42", "")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)

	_, err = uc.Toggle(context.Background(), "c1.$bad", "42", "like")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput, "storage-unsafe content ids are rejected")

	_, err = uc.Toggle(context.Background(), "c1", "", "like")
	assert.ErrorIs(t, err, usecase.ErrUnauthenticated)
}

func TestToggleContentAllowList(t *testing.T) {
	uc, _, contentRepo := newReactionFixture()
	contentRepo.addContent("draft", "post", entity.ContentStatusDraft)
	contentRepo.addContent("attachment", "attachment", entity.ContentStatusPublished)

	_, err := uc.Toggle(context.Background(), "missing", "42", "like")
	assert.ErrorIs(t, err, usecase.ErrNotAllowed)

	_, err = uc.Toggle(context.Background(), "draft", "42", "like")
	assert.ErrorIs(t, err, usecase.ErrNotAllowed)

	_, err = uc.Toggle(context.Background(), "attachment", "42", "like")
	assert.ErrorIs(t, err, usecase.ErrNotAllowed)
}

func TestToggleRetriesOnRevisionConflict(t *testing.T) {
	uc, store, _ := newReactionFixture()
	store.conflictsLeft = 1

	counts, err := uc.Toggle(context.Background(), "c1", "42", "like")

	require.NoError(t, err)
	assert.Equal(t, 2, store.putCalls, "one conflict, one successful retry")
	assert.Equal(t, 1, counts["like"])
}

func TestToggleSurfacesStoreUnavailable(t *testing.T) {
	uc, store, _ := newReactionFixture()
	store.putErr = contract.ErrStoreUnavailable

	_, err := uc.Toggle(context.Background(), "c1", "42", "like")
	assert.ErrorIs(t, err, contract.ErrStoreUnavailable)

	store.putErr = nil
	store.getErr = contract.ErrStoreUnavailable
	_, err = uc.Counts(context.Background(), "c1")
	assert.ErrorIs(t, err, contract.ErrStoreUnavailable)
}

func TestCountsUnknownContentIsZeroFilled(t *testing.T) {
	uc, _, _ := newReactionFixture()

	counts, err := uc.Counts(context.Background(), "never-reacted")

	require.NoError(t, err)
	assert.Equal(t, 0, counts.Total())
	assert.Len(t, counts, 3, "every configured type present")
}

func TestUserReaction(t *testing.T) {
	uc, store, _ := newReactionFixture()
	store.seed("c1", map[string]entity.ReactionType{"42": "love"})

	reaction, ok, err := uc.UserReaction(context.Background(), "c1", "42")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ReactionType("love"), reaction)

	_, ok, err = uc.UserReaction(context.Background(), "c1", "99")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = uc.UserReaction(context.Background(), "c1", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBulkStatsIncludesZeroReactionIDs(t *testing.T) {
	uc, store, _ := newReactionFixture()
	store.seed("3", map[string]entity.ReactionType{"a": "like", "b": "love"})
	store.seed("7", map[string]entity.ReactionType{"a": "like"})

	stats, err := uc.BulkStats(context.Background(), []string{"3", "7", "99"})

	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, 2, stats["3"].Total)
	assert.Equal(t, 1, stats["7"].Total)
	assert.Equal(t, 0, stats["99"].Total)
	assert.Equal(t, 0, stats["99"].Reactions["like"])
}

func TestAugmentContentList(t *testing.T) {
	uc, store, contentRepo := newReactionFixture()
	store.seed("c1", map[string]entity.ReactionType{"42": "like", "99": "like"})

	items, err := contentRepo.ListPublished(context.Background(), "post", 20, 0)
	require.NoError(t, err)

	augmented, err := uc.AugmentContentList(context.Background(), items, "42")
	require.NoError(t, err)
	require.Len(t, augmented, 2)

	byID := make(map[string]int)
	for i, a := range augmented {
		byID[a.Content.ID] = i
	}
	withReactions := augmented[byID["c1"]]
	assert.Equal(t, 2, withReactions.ReactionCounts["like"])
	assert.Equal(t, 2, withReactions.ReactionCounts["total"])
	assert.Equal(t, "like", withReactions.UserReaction)

	without := augmented[byID["c2"]]
	assert.Equal(t, 0, without.ReactionCounts["total"])
	assert.Equal(t, false, without.UserReaction)
}

func TestCountsCacheHitAndInvalidation(t *testing.T) {
	uc, store, _ := newReactionFixture()
	cache := newMemReactionCache()
	uc.SetReactionCache(cache)
	store.seed("c1", map[string]entity.ReactionType{"42": "like"})

	first, err := uc.Counts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := uc.Counts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first, second)

	_, err = uc.Toggle(context.Background(), "c1", "42", "love")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidates, "toggle must invalidate the cached counts")

	refreshed, err := uc.Counts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed["love"])
	assert.Equal(t, 0, refreshed["like"])
}
