package dto

import "github.com/ahlgren-media/reactions/internal/domain/entity"

// SaveReactionRequest is the write endpoint body. VisitorID is only honored
// for unauthenticated requests when anonymous reactions are enabled.
type SaveReactionRequest struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	VisitorID string `json:"visitorId"`
}

// SaveReactionResponse mirrors the legacy write response: the refreshed
// aggregate counts under an "items" key.
type SaveReactionResponse struct {
	Items entity.AggregateCounts `json:"items"`
}

// CountsResponse is the read/embed payload for one content item.
type CountsResponse struct {
	Items        entity.AggregateCounts `json:"items"`
	Total        int                    `json:"total"`
	UserReaction interface{}            `json:"user_reaction"`
}

// StatsEntry is one bulk-stats entry keyed by content id in the response map.
type StatsEntry struct {
	ContentID string                 `json:"content_id"`
	Reactions entity.AggregateCounts `json:"reactions"`
	Total     int                    `json:"total"`
}

// ToStatsEntry converts a ContentStats to its response shape.
func ToStatsEntry(s entity.ContentStats) StatsEntry {
	return StatsEntry{ContentID: s.ContentID, Reactions: s.Reactions, Total: s.Total}
}

// RankedEntry is one entry of the top-N stats response.
type RankedEntry struct {
	ContentID string                 `json:"content_id"`
	Reactions entity.AggregateCounts `json:"reactions"`
	Total     int                    `json:"total"`
	Title     string                 `json:"title"`
	URL       string                 `json:"url"`
}

// ToRankedEntry converts a RankedContent to its response shape.
func ToRankedEntry(r entity.RankedContent) RankedEntry {
	return RankedEntry{
		ContentID: r.ContentID,
		Reactions: r.Reactions,
		Total:     r.Total,
		Title:     r.Title,
		URL:       r.URL,
	}
}
