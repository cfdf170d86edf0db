package tezdomains

import "time"

// Domain is one expired name from the feed. Server-provided order is
// preserved; nothing de-duplicates across pages.
type Domain struct {
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PageInfo mirrors the API's opaque pagination contract. It is replaced
// wholesale on every fetch.
type PageInfo struct {
	StartCursor     string `json:"start_cursor"`
	EndCursor       string `json:"end_cursor"`
	HasNextPage     bool   `json:"has_next_page"`
	HasPreviousPage bool   `json:"has_previous_page"`
}

// Page is one fetched slice of the feed.
type Page struct {
	Domains  []Domain `json:"domains"`
	PageInfo PageInfo `json:"page_info"`
}
