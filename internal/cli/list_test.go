package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seuros/kigen/internal/tezdomains"
)

func pagedStub() *stubSource {
	expires := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	return &stubSource{pages: map[string]tezdomains.Page{
		"": {
			Domains:  []tezdomains.Domain{{Name: "one.tez", ExpiresAt: expires}},
			PageInfo: tezdomains.PageInfo{EndCursor: "p1", HasNextPage: true},
		},
		"p1": {
			Domains:  []tezdomains.Domain{{Name: "two.tez", ExpiresAt: expires}},
			PageInfo: tezdomains.PageInfo{EndCursor: "p2", HasNextPage: true},
		},
		"p2": {
			Domains:  []tezdomains.Domain{{Name: "three.tez", ExpiresAt: expires}},
			PageInfo: tezdomains.PageInfo{EndCursor: "p3", HasNextPage: false},
		},
	}}
}

func TestCollectPagesFollowsCursor(t *testing.T) {
	domains, err := collectPages(context.Background(), pagedStub(), 2)
	require.NoError(t, err)

	require.Len(t, domains, 2)
	assert.Equal(t, "one.tez", domains[0].Name)
	assert.Equal(t, "two.tez", domains[1].Name)
}

func TestCollectPagesStopsWhenFeedEnds(t *testing.T) {
	// Ask for more pages than exist; has_next_page=false on page three ends it.
	domains, err := collectPages(context.Background(), pagedStub(), 10)
	require.NoError(t, err)

	require.Len(t, domains, 3)
	assert.Equal(t, "three.tez", domains[2].Name)
}

func TestCollectPagesPropagatesErrors(t *testing.T) {
	src := &stubSource{err: errors.New("upstream down")}
	_, err := collectPages(context.Background(), src, 1)
	require.Error(t, err)
}
