package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// ContentUsecase manages the content registry the reaction core consults for
// allow-list checks and ranking metadata.
type ContentUsecase struct {
	contentRepo contract.IContentRepository
	uuidGen     contract.IUUIDGenerator
	validator   usecasecontract.IValidator
	config      usecasecontract.IConfigProvider
	logger      usecasecontract.IAppLogger
}

// NewContentUsecase creates and returns a new ContentUsecase instance.
func NewContentUsecase(contentRepo contract.IContentRepository, uuidGen contract.IUUIDGenerator, validator usecasecontract.IValidator, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *ContentUsecase {
	return &ContentUsecase{
		contentRepo: contentRepo,
		uuidGen:     uuidGen,
		validator:   validator,
		config:      config,
		logger:      logger,
	}
}

// CreateContent registers a new published content item. The URL defaults to
// a path under the app base URL when the caller leaves it empty.
func (u *ContentUsecase) CreateContent(ctx context.Context, title, contentType, url string) (*entity.ContentItem, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if err := u.validator.ValidateContentType(contentType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item := &entity.ContentItem{
		ID:     u.uuidGen.NewUUID(),
		Title:  strings.TrimSpace(title),
		Type:   contentType,
		Status: entity.ContentStatusPublished,
		URL:    url,
	}
	if item.URL == "" {
		item.URL = fmt.Sprintf("%s/%s/%s", u.config.GetAppBaseURL(), contentType, item.ID)
	}
	if err := u.contentRepo.CreateContent(ctx, item); err != nil {
		return nil, err
	}
	u.logger.Infof("registered content %s (%s)", item.ID, item.Type)
	return item, nil
}

// ListPublished returns published items of the given type, newest first.
func (u *ContentUsecase) ListPublished(ctx context.Context, contentType string, limit, offset int) ([]entity.ContentItem, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return u.contentRepo.ListPublished(ctx, contentType, limit, offset)
}

var _ usecasecontract.IContentUseCase = (*ContentUsecase)(nil)
