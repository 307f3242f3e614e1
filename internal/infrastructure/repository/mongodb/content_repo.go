package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// ContentRepository is the MongoDB implementation of the content registry.
type ContentRepository struct {
	collection         *mongo.Collection // content items
	reactionCollection string            // joined by the candidate pipeline
}

// NewContentRepository creates and returns a new ContentRepository instance.
func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		collection:         db.Collection("contents"),
		reactionCollection: "reaction_sets",
	}
}

// CreateContent inserts a new content item record into the database.
func (r *ContentRepository) CreateContent(ctx context.Context, item *entity.ContentItem) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	if item.Status == "" {
		item.Status = entity.ContentStatusPublished
	}
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create content item: %w", err)
	}
	return nil
}

// GetContentByID retrieves a single content item by its id.
func (r *ContentRepository) GetContentByID(ctx context.Context, contentID string) (*entity.ContentItem, error) {
	var item entity.ContentItem
	err := r.collection.FindOne(ctx, bson.M{"_id": contentID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve content item: %w", err)
	}
	return &item, nil
}

// GetContentsByIDs retrieves the given content items keyed by id. Unknown ids
// are simply absent from the result.
func (r *ContentRepository) GetContentsByIDs(ctx context.Context, contentIDs []string) (map[string]*entity.ContentItem, error) {
	items := make(map[string]*entity.ContentItem, len(contentIDs))
	if len(contentIDs) == 0 {
		return items, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": contentIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve content items: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var item entity.ContentItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode content item: %w", err)
		}
		items[item.ID] = &item
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate content items: %w", err)
	}
	return items, nil
}

// ListPublished returns published items of the given type, newest first.
func (r *ContentRepository) ListPublished(ctx context.Context, contentType string, limit, offset int) ([]entity.ContentItem, error) {
	filter := bson.M{"status": entity.ContentStatusPublished}
	if contentType != "" {
		filter["type"] = contentType
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list published content: %w", err)
	}
	defer cursor.Close(ctx)

	var items []entity.ContentItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode published content: %w", err)
	}
	return items, nil
}

// ListReactedContentIDs returns ids of published items of the given type that
// have a persisted reaction set, joined through the reaction collection the
// way the ranking engine's candidate fetch needs them. Order is unspecified;
// callers oversample and sort on counted totals themselves.
func (r *ContentRepository) ListReactedContentIDs(ctx context.Context, contentType string, limit int) ([]string, error) {
	match := bson.M{"status": entity.ContentStatusPublished}
	if contentType != "" {
		match["type"] = contentType
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         r.reactionCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "reaction_set",
		}}},
		bson.D{{Key: "$match", Value: bson.M{"reaction_set": bson.M{"$ne": bson.A{}}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list reacted content ids: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode reacted content ids: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

var _ contract.IContentRepository = (*ContentRepository)(nil)
