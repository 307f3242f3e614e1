package usecasecontract

import "github.com/ahlgren-media/reactions/internal/domain/entity"

// IConfigProvider exposes the configuration the reaction core depends on:
// the reaction-type vocabulary, the content allow-list and the anonymous
// reaction policy.
type IConfigProvider interface {
	GetAppBaseURL() string

	// GetReactionTypes returns the configured vocabulary with its display
	// metadata (uninterpreted by the core).
	GetReactionTypes() map[entity.ReactionType]entity.ReactionTypeConfig

	// GetReactionTypeKeys returns the vocabulary keys in stable (sorted) order.
	GetReactionTypeKeys() []entity.ReactionType

	IsReactionTypeValid(key entity.ReactionType) bool

	// IsContentTypeAllowed reports whether items of this type accept reactions.
	IsContentTypeAllowed(contentType string) bool

	// GetAnonymousReactionsEnabled reports whether visitor-id actors may react.
	GetAnonymousReactionsEnabled() bool

	// GetVisitorIDSalt returns the keyed-digest salt for visitor ids; empty
	// means visitor ids are stored in normalized raw form.
	GetVisitorIDSalt() string
}
