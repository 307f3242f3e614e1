package mocks

import (
	"context"
	"errors"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// MockContentUsecase is an in-memory mock of the IContentUseCase interface.
type MockContentUsecase struct {
	ShouldFailCreate bool
	ShouldFailList   bool

	Items []entity.ContentItem
}

var _ usecasecontract.IContentUseCase = (*MockContentUsecase)(nil)

func NewMockContentUsecase() *MockContentUsecase {
	return &MockContentUsecase{}
}

func (m *MockContentUsecase) CreateContent(ctx context.Context, title, contentType, url string) (*entity.ContentItem, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("content creation failed")
	}
	item := entity.ContentItem{
		ID:     "mock-content-id",
		Title:  title,
		Type:   contentType,
		Status: entity.ContentStatusPublished,
		URL:    url,
	}
	m.Items = append(m.Items, item)
	return &item, nil
}

func (m *MockContentUsecase) ListPublished(ctx context.Context, contentType string, limit, offset int) ([]entity.ContentItem, error) {
	if m.ShouldFailList {
		return nil, errors.New("content listing failed")
	}
	return m.Items, nil
}
