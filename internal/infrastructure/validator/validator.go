package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateContentID checks that a content id is a non-empty storage-safe key.
func (av *AppValidator) ValidateContentID(contentID string) error {
	if err := av.validate.Var(contentID, "required,max=128"); err != nil {
		return fmt.Errorf("invalid content id: %w", err)
	}
	// Mongo document ids double as map keys; dots and dollars are unsafe.
	if err := av.validate.Var(contentID, "excludesall=.$"); err != nil {
		return fmt.Errorf("invalid content id: %w", err)
	}
	return nil
}

// ValidateReactionKey checks that a reaction key is a short lowercase slug.
func (av *AppValidator) ValidateReactionKey(key string) error {
	if err := av.validate.Var(key, "required,max=32,lowercase,excludesall=.$"); err != nil {
		return fmt.Errorf("invalid reaction key: %w", err)
	}
	return nil
}

// ValidateContentType checks that a content type is a short lowercase slug.
func (av *AppValidator) ValidateContentType(contentType string) error {
	if err := av.validate.Var(contentType, "required,max=32,lowercase,alphanum"); err != nil {
		return fmt.Errorf("invalid content type: %w", err)
	}
	return nil
}
