package usecasecontract

// IValidator validates externally supplied keys before they reach storage.
type IValidator interface {
	ValidateContentID(contentID string) error
	ValidateReactionKey(key string) error
	ValidateContentType(contentType string) error
}
