package mocks

import (
	"context"
	"errors"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// MockRankingUsecase is a canned-result mock of the IRankingUseCase interface.
type MockRankingUsecase struct {
	ShouldFail bool
	Results    []entity.RankedContent

	// Call recording for assertions
	LastContentType string
	LastLimit       int
}

var _ usecasecontract.IRankingUseCase = (*MockRankingUsecase)(nil)

func NewMockRankingUsecase() *MockRankingUsecase {
	return &MockRankingUsecase{}
}

func (m *MockRankingUsecase) TopByReactions(ctx context.Context, contentType string, limit int) ([]entity.RankedContent, error) {
	if m.ShouldFail {
		return nil, errors.New("ranking failed")
	}
	m.LastContentType = contentType
	m.LastLimit = limit
	if len(m.Results) > limit {
		return m.Results[:limit], nil
	}
	return m.Results, nil
}
