package tezdomains

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seuros/kigen/internal/config"
)

func testConfig(apiURL string) *config.Config {
	return &config.Config{
		APIURL:         apiURL,
		Port:           "3000",
		PageSize:       50,
		WindowFromDays: 7,
		WindowToDays:   5,
		HTTPTimeout:    2 * time.Second,
	}
}

func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	original := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = original })
}

func gqlHandler(t *testing.T, capture *gqlRequest, respond string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(respond))
	}
}

const twoDomainsResponse = `{
  "data": {
    "domains": {
      "edges": [
        {"node": {"name": "alpha.tez", "expiresAtUtc": "2025-06-09T10:00:00Z"}},
        {"node": {"name": "beta.tez", "expiresAtUtc": "2025-06-09T08:30:00Z"}}
      ],
      "pageInfo": {
        "startCursor": "c1",
        "endCursor": "c2",
        "hasNextPage": true,
        "hasPreviousPage": false
      }
    }
  }
}`

func TestExpiredPageMapsEdgesAndPageInfo(t *testing.T) {
	var got gqlRequest
	srv := httptest.NewServer(gqlHandler(t, &got, twoDomainsResponse))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	page, err := client.ExpiredPage(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, page.Domains, 2)
	assert.Equal(t, "alpha.tez", page.Domains[0].Name)
	assert.Equal(t, time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC), page.Domains[0].ExpiresAt)
	assert.Equal(t, "beta.tez", page.Domains[1].Name)

	assert.Equal(t, "c1", page.PageInfo.StartCursor)
	assert.Equal(t, "c2", page.PageInfo.EndCursor)
	assert.True(t, page.PageInfo.HasNextPage)
	assert.False(t, page.PageInfo.HasPreviousPage)

	// First page must not send a cursor.
	_, hasAfter := got.Variables["after"]
	assert.False(t, hasAfter)
	assert.EqualValues(t, 50, got.Variables["first"])
}

func TestExpiredPageSendsWindowAndFilters(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	freezeNow(t, now)

	var got gqlRequest
	srv := httptest.NewServer(gqlHandler(t, &got, twoDomainsResponse))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	_, err := client.ExpiredPage(context.Background(), "")
	require.NoError(t, err)

	where, ok := got.Variables["where"].(map[string]any)
	require.True(t, ok, "where variable missing")
	assert.Equal(t, "EXPIRED", where["validity"])

	level, ok := where["level"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, []any{float64(2)}, level["in"])

	expires, ok := where["expiresAtUtc"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -7).Format(time.RFC3339), expires["greaterThan"])
	assert.Equal(t, now.AddDate(0, 0, -5).Format(time.RFC3339), expires["lessThan"])
}

func TestExpiredPagePassesCursor(t *testing.T) {
	var got gqlRequest
	srv := httptest.NewServer(gqlHandler(t, &got, twoDomainsResponse))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	_, err := client.ExpiredPage(context.Background(), "cursor-42")
	require.NoError(t, err)

	assert.Equal(t, "cursor-42", got.Variables["after"])
}

func TestExpiredPageGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(gqlHandler(t, nil, `{"errors": [{"message": "window out of range"}]}`))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	_, err := client.ExpiredPage(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window out of range")
}

func TestExpiredPageHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	_, err := client.ExpiredPage(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExpiredPageEmptyConnection(t *testing.T) {
	srv := httptest.NewServer(gqlHandler(t, nil, `{
		"data": {"domains": {"edges": [], "pageInfo": {"startCursor": "", "endCursor": "", "hasNextPage": false, "hasPreviousPage": false}}}
	}`))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	page, err := client.ExpiredPage(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, page.Domains)
	assert.False(t, page.PageInfo.HasNextPage)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(gqlHandler(t, nil, `{"data": {"__typename": "Query"}}`))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	require.NoError(t, client.Ping(context.Background()))

	srv.Close()
	require.Error(t, client.Ping(context.Background()))
}
