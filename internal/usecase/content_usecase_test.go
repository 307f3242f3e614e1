package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahlgren-media/reactions/internal/usecase"
)

type fixedUUIDGen struct{ id string }

func (g fixedUUIDGen) NewUUID() string { return g.id }

type passValidator struct{}

func (passValidator) ValidateContentID(string) error   { return nil }
func (passValidator) ValidateReactionKey(string) error { return nil }
func (passValidator) ValidateContentType(contentType string) error {
	if contentType == "" {
		return usecase.ErrInvalidInput
	}
	return nil
}

func TestCreateContentDefaultsURL(t *testing.T) {
	contentRepo := newMemContentRepo()
	uc := usecase.NewContentUsecase(contentRepo, fixedUUIDGen{id: "id-1"}, passValidator{}, newStubConfig(), nopLogger{})

	item, err := uc.CreateContent(context.Background(), "  Hello  ", "post", "")

	require.NoError(t, err)
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, "Hello", item.Title)
	assert.Equal(t, "http://localhost:8080/post/id-1", item.URL)
	assert.True(t, item.Published())

	stored, err := contentRepo.GetContentByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", stored.Title)
}

func TestCreateContentRejectsBadInput(t *testing.T) {
	uc := usecase.NewContentUsecase(newMemContentRepo(), fixedUUIDGen{id: "id-1"}, passValidator{}, newStubConfig(), nopLogger{})

	_, err := uc.CreateContent(context.Background(), "   ", "post", "")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)

	_, err = uc.CreateContent(context.Background(), "Hello", "", "")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}
