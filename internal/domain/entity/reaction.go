package entity

import "time"

// ReactionType is the key of one configured reaction category ("like", "love", ...).
type ReactionType string

// ReactionLabels holds the screen-reader strings rendered around a reaction
// button. The core carries them for presentation collaborators and never
// interprets them.
type ReactionLabels struct {
	Reaction   string `json:"reaction"`
	AmountPre  string `json:"amount_pre"`
	AmountPost string `json:"amount_post"`
}

// ReactionTypeConfig is the display metadata of one configured reaction type.
type ReactionTypeConfig struct {
	Emoji  string         `json:"emoji"`
	Labels ReactionLabels `json:"labels"`
}

// ReactionSet is the full persisted reaction state of one content item:
// at most one reaction type per actor. Revision supports optimistic
// concurrency in the store; 0 means the set has never been persisted.
type ReactionSet struct {
	ContentID string                  `bson:"_id" json:"content_id"`
	Reactions map[string]ReactionType `bson:"reactions" json:"reactions"`
	Revision  int64                   `bson:"revision" json:"-"`
	UpdatedAt time.Time               `bson:"updated_at" json:"-"`
}

// NewReactionSet returns an empty, never-persisted set for a content item.
func NewReactionSet(contentID string) ReactionSet {
	return ReactionSet{
		ContentID: contentID,
		Reactions: make(map[string]ReactionType),
	}
}

// Reaction returns the actor's active reaction, if any.
func (s ReactionSet) Reaction(actorID string) (ReactionType, bool) {
	t, ok := s.Reactions[actorID]
	return t, ok
}

// AggregateCounts maps each reaction type to the number of actors holding it.
// Always derived from a ReactionSet, never edited independently.
type AggregateCounts map[ReactionType]int

// Total sums the counts over all types.
func (c AggregateCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CountReactions tallies a reaction set, zero-filling every configured type
// so callers always see the full vocabulary.
func CountReactions(set ReactionSet, types []ReactionType) AggregateCounts {
	counts := make(AggregateCounts, len(types))
	for _, t := range types {
		counts[t] = 0
	}
	for _, t := range set.Reactions {
		counts[t]++
	}
	return counts
}

// ContentStats is one entry of a bulk stats response.
type ContentStats struct {
	ContentID string          `json:"content_id"`
	Reactions AggregateCounts `json:"reactions"`
	Total     int             `json:"total"`
}

// RankedContent is one entry of a top-N ranking result, carrying the display
// metadata collaborators need alongside the counts.
type RankedContent struct {
	ContentID string          `json:"content_id"`
	Reactions AggregateCounts `json:"reactions"`
	Total     int             `json:"total"`
	Title     string          `json:"title"`
	URL       string          `json:"url"`
}
