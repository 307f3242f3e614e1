package contract

import (
	"context"
	"errors"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// ErrContentNotFound is returned when a content id is not in the registry.
var ErrContentNotFound = errors.New("content not found")

// IContentRepository is the content registry: the reaction core's view of
// what the host system knows about content items.
type IContentRepository interface {
	CreateContent(ctx context.Context, item *entity.ContentItem) error
	GetContentByID(ctx context.Context, contentID string) (*entity.ContentItem, error)
	GetContentsByIDs(ctx context.Context, contentIDs []string) (map[string]*entity.ContentItem, error)

	// ListPublished returns published items of the given type, newest first.
	ListPublished(ctx context.Context, contentType string, limit, offset int) ([]entity.ContentItem, error)

	// ListReactedContentIDs returns ids of published items of the given type
	// that have a persisted reaction set. Callers oversample beyond their
	// final limit; order is unspecified.
	ListReactedContentIDs(ctx context.Context, contentType string, limit int) ([]string, error)
}
