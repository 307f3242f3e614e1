package usecasecontract

import (
	"context"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// IContentUseCase manages the content registry the reaction core consults.
type IContentUseCase interface {
	CreateContent(ctx context.Context, title, contentType, url string) (*entity.ContentItem, error)
	ListPublished(ctx context.Context, contentType string, limit, offset int) ([]entity.ContentItem, error)
}
