package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// ReactionStore is the MongoDB implementation of the IReactionStore interface:
// one document per content id holding the full actor -> reaction-type mapping.
type ReactionStore struct {
	collection *mongo.Collection
}

// NewReactionStore creates and returns a new ReactionStore instance.
func NewReactionStore(db *mongo.Database) *ReactionStore {
	return &ReactionStore{
		collection: db.Collection("reaction_sets"),
	}
}

// Get fetches the reaction set for a content id. A content id that was never
// reacted to yields an empty set with Revision 0, not an error.
func (s *ReactionStore) Get(ctx context.Context, contentID string) (entity.ReactionSet, error) {
	var set entity.ReactionSet
	err := s.collection.FindOne(ctx, bson.M{"_id": contentID}).Decode(&set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.NewReactionSet(contentID), nil
		}
		return entity.ReactionSet{}, fmt.Errorf("%w: fetching reaction set for %s: %v", contract.ErrStoreUnavailable, contentID, err)
	}
	if set.Reactions == nil {
		set.Reactions = make(map[string]entity.ReactionType)
	}
	return set, nil
}

// Put replaces the full reaction set, conditional on the revision the caller
// read. Revision 0 inserts; anything else updates the matching revision and
// bumps it. A lost race surfaces as ErrRevisionConflict for the caller to
// re-read and retry.
func (s *ReactionStore) Put(ctx context.Context, set entity.ReactionSet) error {
	if set.Reactions == nil {
		set.Reactions = make(map[string]entity.ReactionType)
	}
	now := time.Now()

	if set.Revision == 0 {
		doc := entity.ReactionSet{
			ContentID: set.ContentID,
			Reactions: set.Reactions,
			Revision:  1,
			UpdatedAt: now,
		}
		if _, err := s.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return contract.ErrRevisionConflict
			}
			return fmt.Errorf("%w: inserting reaction set for %s: %v", contract.ErrStoreUnavailable, set.ContentID, err)
		}
		return nil
	}

	filter := bson.M{"_id": set.ContentID, "revision": set.Revision}
	update := bson.M{
		"$set": bson.M{"reactions": set.Reactions, "updated_at": now},
		"$inc": bson.M{"revision": 1},
	}
	res, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: updating reaction set for %s: %v", contract.ErrStoreUnavailable, set.ContentID, err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrRevisionConflict
	}
	return nil
}

var _ contract.IReactionStore = (*ReactionStore)(nil)
