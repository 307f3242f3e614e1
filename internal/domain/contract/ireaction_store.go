package contract

import (
	"context"
	"errors"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// ErrStoreUnavailable is returned when the persistence layer cannot be
// reached. Callers surface it; the core never retries it.
var ErrStoreUnavailable = errors.New("reaction store unavailable")

// ErrRevisionConflict is returned by Put when the stored revision no longer
// matches the one the caller read. The caller re-reads and retries.
var ErrRevisionConflict = errors.New("reaction set revision conflict")

// IReactionStore is the single source of truth for reactions: one persisted
// actor->type mapping per content id.
type IReactionStore interface {
	// Get returns the reaction set for a content id. A content id with no
	// persisted set yields an empty set with Revision 0, not an error.
	Get(ctx context.Context, contentID string) (entity.ReactionSet, error)

	// Put replaces the full set. Writes are conditional on set.Revision
	// matching the stored revision (0 means "must not exist yet"); a mismatch
	// returns ErrRevisionConflict so concurrent read-modify-write cycles on
	// the same content id serialize through retries.
	Put(ctx context.Context, set entity.ReactionSet) error
}
