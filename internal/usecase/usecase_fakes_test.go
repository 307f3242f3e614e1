package usecase_test

import (
	"context"
	"sort"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
)

// stubConfig is a minimal IConfigProvider for usecase tests.
type stubConfig struct {
	anonEnabled bool
	salt        string
	types       []entity.ReactionType
	allowed     []string
}

func newStubConfig() *stubConfig {
	return &stubConfig{
		anonEnabled: true,
		types:       []entity.ReactionType{"laugh", "like", "love"},
		allowed:     []string{"post", "page"},
	}
}

func (c *stubConfig) GetAppBaseURL() string { return "http://localhost:8080" }

func (c *stubConfig) GetReactionTypes() map[entity.ReactionType]entity.ReactionTypeConfig {
	m := make(map[entity.ReactionType]entity.ReactionTypeConfig, len(c.types))
	for _, t := range c.types {
		m[t] = entity.ReactionTypeConfig{}
	}
	return m
}

func (c *stubConfig) GetReactionTypeKeys() []entity.ReactionType {
	keys := append([]entity.ReactionType(nil), c.types...)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (c *stubConfig) IsReactionTypeValid(key entity.ReactionType) bool {
	for _, t := range c.types {
		if t == key {
			return true
		}
	}
	return false
}

func (c *stubConfig) IsContentTypeAllowed(contentType string) bool {
	for _, t := range c.allowed {
		if t == contentType {
			return true
		}
	}
	return false
}

func (c *stubConfig) GetAnonymousReactionsEnabled() bool { return c.anonEnabled }
func (c *stubConfig) GetVisitorIDSalt() string           { return c.salt }

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

// memReactionStore is an in-memory IReactionStore with revision semantics and
// failure injection.
type memReactionStore struct {
	sets map[string]entity.ReactionSet

	getErr        error
	putErr        error
	conflictsLeft int
	putCalls      int
}

var _ contract.IReactionStore = (*memReactionStore)(nil)

func newMemReactionStore() *memReactionStore {
	return &memReactionStore{sets: make(map[string]entity.ReactionSet)}
}

func (s *memReactionStore) Get(ctx context.Context, contentID string) (entity.ReactionSet, error) {
	if s.getErr != nil {
		return entity.ReactionSet{}, s.getErr
	}
	set, ok := s.sets[contentID]
	if !ok {
		return entity.NewReactionSet(contentID), nil
	}
	// Copy so callers cannot mutate stored state in place.
	reactions := make(map[string]entity.ReactionType, len(set.Reactions))
	for k, v := range set.Reactions {
		reactions[k] = v
	}
	set.Reactions = reactions
	return set, nil
}

func (s *memReactionStore) Put(ctx context.Context, set entity.ReactionSet) error {
	s.putCalls++
	if s.putErr != nil {
		return s.putErr
	}
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		// Simulate a concurrent writer winning the race.
		current := s.sets[set.ContentID]
		current.ContentID = set.ContentID
		if current.Reactions == nil {
			current.Reactions = make(map[string]entity.ReactionType)
		}
		current.Revision++
		s.sets[set.ContentID] = current
		return contract.ErrRevisionConflict
	}
	current, ok := s.sets[set.ContentID]
	if set.Revision == 0 {
		if ok {
			return contract.ErrRevisionConflict
		}
	} else if !ok || current.Revision != set.Revision {
		return contract.ErrRevisionConflict
	}
	set.Revision++
	s.sets[set.ContentID] = set
	return nil
}

// seed installs a reaction set bypassing revision checks.
func (s *memReactionStore) seed(contentID string, reactions map[string]entity.ReactionType) {
	s.sets[contentID] = entity.ReactionSet{
		ContentID: contentID,
		Reactions: reactions,
		Revision:  1,
	}
}

// memContentRepo is an in-memory IContentRepository.
type memContentRepo struct {
	items      map[string]*entity.ContentItem
	candidates []string

	candidatesErr error
	lastLimit     int
}

var _ contract.IContentRepository = (*memContentRepo)(nil)

func newMemContentRepo() *memContentRepo {
	return &memContentRepo{items: make(map[string]*entity.ContentItem)}
}

func (r *memContentRepo) addContent(id, contentType string, status entity.ContentStatus) {
	r.items[id] = &entity.ContentItem{
		ID:     id,
		Title:  "Title of " + id,
		Type:   contentType,
		Status: status,
		URL:    "http://localhost:8080/" + contentType + "/" + id,
	}
}

func (r *memContentRepo) CreateContent(ctx context.Context, item *entity.ContentItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memContentRepo) GetContentByID(ctx context.Context, contentID string) (*entity.ContentItem, error) {
	item, ok := r.items[contentID]
	if !ok {
		return nil, contract.ErrContentNotFound
	}
	return item, nil
}

func (r *memContentRepo) GetContentsByIDs(ctx context.Context, contentIDs []string) (map[string]*entity.ContentItem, error) {
	out := make(map[string]*entity.ContentItem)
	for _, id := range contentIDs {
		if item, ok := r.items[id]; ok {
			out[id] = item
		}
	}
	return out, nil
}

func (r *memContentRepo) ListPublished(ctx context.Context, contentType string, limit, offset int) ([]entity.ContentItem, error) {
	var items []entity.ContentItem
	for _, item := range r.items {
		if item.Published() && (contentType == "" || item.Type == contentType) {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memContentRepo) ListReactedContentIDs(ctx context.Context, contentType string, limit int) ([]string, error) {
	if r.candidatesErr != nil {
		return nil, r.candidatesErr
	}
	r.lastLimit = limit
	if len(r.candidates) > limit {
		return r.candidates[:limit], nil
	}
	return r.candidates, nil
}

// memReactionCache is an in-memory IReactionCache recording its traffic.
type memReactionCache struct {
	counts      map[string]entity.AggregateCounts
	sets, hits  int
	invalidates int
}

var _ contract.IReactionCache = (*memReactionCache)(nil)

func newMemReactionCache() *memReactionCache {
	return &memReactionCache{counts: make(map[string]entity.AggregateCounts)}
}

func (c *memReactionCache) GetCounts(ctx context.Context, contentID string) (entity.AggregateCounts, bool, error) {
	counts, ok := c.counts[contentID]
	if ok {
		c.hits++
	}
	return counts, ok, nil
}

func (c *memReactionCache) SetCounts(ctx context.Context, contentID string, counts entity.AggregateCounts) error {
	c.sets++
	c.counts[contentID] = counts
	return nil
}

func (c *memReactionCache) InvalidateCounts(ctx context.Context, contentID string) error {
	c.invalidates++
	delete(c.counts, contentID)
	return nil
}
