// Package tezdomains is the client for the Tezos Domains GraphQL API.
package tezdomains

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seuros/kigen/internal/config"
	"github.com/seuros/kigen/internal/httpx"
	"github.com/seuros/kigen/internal/logging"
)

var nowFunc = time.Now

// expiredQuery lists second-level names whose expiry falls inside the
// sliding window, newest expiry first, one cursor-paged connection.
const expiredQuery = `query ExpiredDomains($where: DomainsFilter!, $first: Int!, $after: String) {
  domains(where: $where, first: $first, after: $after, order: {field: EXPIRES_AT, direction: DESC}) {
    edges {
      node {
        name
        expiresAtUtc
      }
    }
    pageInfo {
      startCursor
      endCursor
      hasNextPage
      hasPreviousPage
    }
  }
}`

// Source is anything that can produce a page of expired domains.
type Source interface {
	ExpiredPage(ctx context.Context, after string) (Page, error)
}

// Client issues the expired-domains query against one fixed endpoint.
type Client struct {
	endpoint string
	pageSize int
	fromDays int
	toDays   int
	http     *http.Client
	log      *zap.Logger
}

// New builds a client from application configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.APIURL,
		pageSize: cfg.PageSize,
		fromDays: cfg.WindowFromDays,
		toDays:   cfg.WindowToDays,
		http:     &http.Client{Timeout: cfg.HTTPTimeout},
		log:      logging.With(zap.String("component", "tezdomains")),
	}
}

var _ Source = (*Client)(nil)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

type domainNode struct {
	Name         string    `json:"name"`
	ExpiresAtUTC time.Time `json:"expiresAtUtc"`
}

type gqlResponse struct {
	Data struct {
		Domains struct {
			Edges []struct {
				Node domainNode `json:"node"`
			} `json:"edges"`
			PageInfo struct {
				StartCursor     string `json:"startCursor"`
				EndCursor       string `json:"endCursor"`
				HasNextPage     bool   `json:"hasNextPage"`
				HasPreviousPage bool   `json:"hasPreviousPage"`
			} `json:"pageInfo"`
		} `json:"domains"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

// ExpiredPage fetches one page of recently expired domains. An empty cursor
// requests the first page; otherwise results continue after the cursor.
func (c *Client) ExpiredPage(ctx context.Context, after string) (Page, error) {
	window := windowAt(nowFunc().UTC(), c.fromDays, c.toDays)

	variables := map[string]any{
		"where": map[string]any{
			"validity": "EXPIRED",
			"level":    map[string]any{"in": []int{2}},
			"expiresAtUtc": map[string]any{
				"greaterThan": window.From.Format(time.RFC3339),
				"lessThan":    window.To.Format(time.RFC3339),
			},
		},
		"first": c.pageSize,
	}
	if after != "" {
		variables["after"] = after
	}

	var resp gqlResponse
	err := httpx.PostJSON(ctx, c.http, c.endpoint, gqlRequest{Query: expiredQuery, Variables: variables}, &resp)
	if err != nil {
		return Page{}, fmt.Errorf("query %s: %w", c.endpoint, err)
	}
	if len(resp.Errors) > 0 {
		return Page{}, fmt.Errorf("graphql: %s", resp.Errors[0].Message)
	}

	conn := resp.Data.Domains
	page := Page{
		Domains: make([]Domain, 0, len(conn.Edges)),
		PageInfo: PageInfo{
			StartCursor:     conn.PageInfo.StartCursor,
			EndCursor:       conn.PageInfo.EndCursor,
			HasNextPage:     conn.PageInfo.HasNextPage,
			HasPreviousPage: conn.PageInfo.HasPreviousPage,
		},
	}
	for _, edge := range conn.Edges {
		page.Domains = append(page.Domains, Domain{
			Name:      edge.Node.Name,
			ExpiresAt: edge.Node.ExpiresAtUTC,
		})
	}

	c.log.Debug("fetched expired domains page",
		zap.Int("count", len(page.Domains)),
		zap.Bool("has_next", page.PageInfo.HasNextPage),
		zap.String("after", after))

	return page, nil
}

// Ping issues a minimal query to verify the endpoint answers GraphQL at all.
// Used by the doctor command.
func (c *Client) Ping(ctx context.Context) error {
	var resp gqlResponse
	err := httpx.PostJSON(ctx, c.http, c.endpoint, gqlRequest{Query: `{ __typename }`}, &resp)
	if err != nil {
		return err
	}
	return nil
}
