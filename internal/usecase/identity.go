package usecase

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// IdentityResolver derives the stable actor id a reaction is recorded under.
type IdentityResolver struct {
	config usecasecontract.IConfigProvider
}

// NewIdentityResolver creates and returns a new IdentityResolver instance.
func NewIdentityResolver(config usecasecontract.IConfigProvider) *IdentityResolver {
	return &IdentityResolver{config: config}
}

// Resolve picks the actor id for a request. A non-empty authenticated user id
// always wins over any supplied visitor id, so logged-in users cannot react
// under a forged identity. Anonymous visitors are admitted only when the
// config allows them.
func (r *IdentityResolver) Resolve(authenticatedUserID, suppliedVisitorID string) (string, error) {
	if authenticatedUserID != "" && authenticatedUserID != "0" {
		return authenticatedUserID, nil
	}

	if r.config.GetAnonymousReactionsEnabled() && suppliedVisitorID != "" {
		normalized := normalizeVisitorID(suppliedVisitorID)
		if normalized == "" {
			return "", ErrUnauthenticated
		}
		if salt := r.config.GetVisitorIDSalt(); salt != "" {
			return digestVisitorID(normalized, salt), nil
		}
		return normalized, nil
	}

	return "", ErrUnauthenticated
}

// normalizeVisitorID lowercases the supplied id and strips everything outside
// [a-z0-9_-], mirroring sanitized-key semantics so visitor ids are always
// storage-safe.
func normalizeVisitorID(visitorID string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(visitorID) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// digestVisitorID replaces the normalized fingerprint with a keyed BLAKE2b
// digest so raw client fingerprints never become storage keys. The digest is
// stable per (visitor, salt) pair, which is all the dedup invariant needs.
func digestVisitorID(normalized, salt string) string {
	key := []byte(salt)
	if len(key) > blake2b.Size {
		key = key[:blake2b.Size]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// Only reachable with an oversized key, which is truncated above.
		return normalized
	}
	h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil))
}
