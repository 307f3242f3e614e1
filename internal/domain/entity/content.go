package entity

import "time"

// ContentStatus is the publication state of a content item.
type ContentStatus string

const (
	ContentStatusPublished ContentStatus = "published"
	ContentStatusDraft     ContentStatus = "draft"
)

// ContentItem is a registered piece of content reactions can attach to.
// The registry mirrors what the host CMS knows about the item; the reaction
// core only needs id, type and visibility.
type ContentItem struct {
	ID        string        `bson:"_id,omitempty" json:"id"`
	Title     string        `bson:"title" json:"title"`
	Type      string        `bson:"type" json:"type"`
	Status    ContentStatus `bson:"status" json:"status"`
	URL       string        `bson:"url" json:"url"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// Published reports whether the item is visible to readers.
func (c ContentItem) Published() bool {
	return c.Status == ContentStatusPublished
}
