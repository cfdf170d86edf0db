package tezdomains

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seuros/kigen/internal/logging"
)

// CachedSource wraps a Source with a per-cursor TTL cache so scroll-back
// and page reloads don't hammer the upstream API. Entries expire rather
// than being evicted; the window slides slowly enough that a short TTL
// keeps the feed honest.
type CachedSource struct {
	src Source
	ttl time.Duration
	log *zap.Logger

	mu    sync.RWMutex
	pages map[string]cachedPage
}

type cachedPage struct {
	page    Page
	fetched time.Time
}

// NewCachedSource wraps src. A zero or negative TTL disables caching.
func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src:   src,
		ttl:   ttl,
		log:   logging.With(zap.String("component", "page_cache")),
		pages: make(map[string]cachedPage),
	}
}

var _ Source = (*CachedSource)(nil)

// ExpiredPage returns a cached page when fresh, otherwise fetches and stores.
// When the refresh fails and an expired entry exists for the cursor, the
// stale page is served instead of the error. The empty cursor keys the
// first page.
func (c *CachedSource) ExpiredPage(ctx context.Context, after string) (Page, error) {
	var stale Page
	var haveStale bool
	if c.ttl > 0 {
		c.mu.RLock()
		entry, ok := c.pages[after]
		c.mu.RUnlock()
		if ok {
			if time.Since(entry.fetched) < c.ttl {
				return entry.page, nil
			}
			stale, haveStale = entry.page, true
		}
	}

	page, err := c.src.ExpiredPage(ctx, after)
	if err != nil {
		if haveStale {
			c.log.Warn("serving stale page after refresh failure",
				zap.String("after", after),
				zap.Error(err))
			return stale, nil
		}
		return Page{}, err
	}

	if c.ttl > 0 {
		c.mu.Lock()
		c.pages[after] = cachedPage{page: page, fetched: time.Now()}
		c.mu.Unlock()
		c.log.Debug("cached page", zap.String("after", after), zap.Int("count", len(page.Domains)))
	}

	return page, nil
}
