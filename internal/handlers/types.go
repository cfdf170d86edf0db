package handlers

import (
	"time"

	"github.com/seuros/kigen/internal/tezdomains"
)

// DomainRow is one rendered feed entry.
type DomainRow struct {
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
	Expired   string    `json:"expired"`    // relative label, e.g. "expired 6 days ago"
	DetailURL string    `json:"detail_url"` // external detail page for the name
}

// DomainsResponse is the payload behind the infinite scroll. The page keeps
// appending rows until has_next_page turns false.
type DomainsResponse struct {
	Data     []DomainRow         `json:"data"`
	PageInfo tezdomains.PageInfo `json:"page_info"`
}
