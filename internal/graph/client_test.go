package graph

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("fetches principal and pages", func(t *testing.T) {
		f := newFakeGraph(t)
		f.principal = map[string]any{
			"id":       "100",
			"name":     "Alice",
			"email":    "alice@example.com",
			"birthday": "01/02/1990",
			"picture":  map[string]any{"data": map[string]any{"url": "https://example.com/a.jpg"}},
		}
		f.pages = []map[string]any{
			{"id": "200", "name": "Shop", "access_token": "tok2"},
			{"id": "300", "name": "Blog", "access_token": "tok3"},
		}

		c := New(context.Background(), Config{
			AccessToken: "root",
			BaseURL:     f.server.URL,
			HTTPClient:  f.server.Client(),
			Logger:      slog.New(&recordHandler{}),
		})

		me := c.Principal()
		assert.Equal(t, "100", me.ID)
		assert.Equal(t, "Alice", me.Name)
		assert.Equal(t, "alice@example.com", me.Email)
		assert.Equal(t, "https://example.com/a.jpg", me.PictureURL())

		assert.Equal(t, map[string]Page{
			"Shop": {ID: "200", Name: "Shop", AccessToken: "tok2"},
			"Blog": {ID: "300", Name: "Blog", AccessToken: "tok3"},
		}, c.Pages())

		calls := f.Calls()
		require.Len(t, calls, 2)
		assert.Equal(t, "/me", calls[0].Path)
		assert.Equal(t, principalFields, calls[0].Query["fields"])
		assert.Equal(t, "root", calls[0].AccessToken)
		assert.Equal(t, "/me/accounts", calls[1].Path)
		assert.Equal(t, "root", calls[1].AccessToken)
	})

	t.Run("failed fetches leave empty state", func(t *testing.T) {
		f := newFakeGraph(t)
		f.fail["GET /me"] = http.StatusUnauthorized
		f.fail["GET /me/accounts"] = http.StatusUnauthorized
		logs := &recordHandler{}

		c := New(context.Background(), Config{
			AccessToken: "bad",
			BaseURL:     f.server.URL,
			HTTPClient:  f.server.Client(),
			Logger:      slog.New(logs),
		})

		assert.Empty(t, c.Principal().ID)
		assert.Empty(t, c.Pages())
		assert.Equal(t, 2, logs.errors())
	})

	t.Run("uses version prefix", func(t *testing.T) {
		f := newFakeGraph(t)
		New(context.Background(), Config{
			AccessToken: "root",
			BaseURL:     f.server.URL + "/",
			Version:     "v19.0",
			HTTPClient:  f.server.Client(),
			Logger:      slog.New(&recordHandler{}),
		})

		calls := f.Calls()
		require.NotEmpty(t, calls)
		assert.Equal(t, "/v19.0/me", calls[0].Path)
	})
}

func TestClient_request(t *testing.T) {
	t.Run("injects override token", func(t *testing.T) {
		f := newFakeGraph(t)
		c, _ := newTestClient(t, f)

		res := c.request(context.Background(), http.MethodGet, "me", nil, nil, "other")
		require.True(t, res.OK())
		assert.Equal(t, "other", f.Calls()[0].AccessToken)
	})

	t.Run("falls back to root token", func(t *testing.T) {
		f := newFakeGraph(t)
		c, _ := newTestClient(t, f)

		c.request(context.Background(), http.MethodGet, "me", nil, nil, "")
		assert.Equal(t, "root", f.Calls()[0].AccessToken)
	})

	t.Run("does not mutate params", func(t *testing.T) {
		f := newFakeGraph(t)
		c, _ := newTestClient(t, f)

		params := map[string][]string{"fields": {"id"}}
		c.request(context.Background(), http.MethodGet, "me", params, nil, "")
		assert.NotContains(t, params, ParamAccessToken)
	})

	t.Run("non-2xx becomes error result", func(t *testing.T) {
		f := newFakeGraph(t)
		c, logs := newTestClient(t, f)
		f.fail["GET /me"] = http.StatusBadRequest

		res := c.request(context.Background(), http.MethodGet, "me", nil, nil, "")
		require.False(t, res.OK())

		var terr *TransportError
		require.True(t, errors.As(res.Err, &terr))
		assert.Equal(t, http.StatusBadRequest, terr.StatusCode)
		require.NotNil(t, terr.API)
		assert.Equal(t, "forced failure", terr.API.Message)
		assert.Contains(t, res.Map(), "error")
		assert.Equal(t, 1, logs.errors())
	})

	t.Run("404 matches ErrNotFound", func(t *testing.T) {
		f := newFakeGraph(t)
		c, _ := newTestClient(t, f)

		res := c.request(context.Background(), http.MethodGet, "nothing/here", nil, nil, "")
		assert.ErrorIs(t, res.Err, ErrNotFound)
	})

	t.Run("connection failure becomes error result", func(t *testing.T) {
		f := newFakeGraph(t)
		c, logs := newTestClient(t, f)
		f.server.Close()

		res := c.request(context.Background(), http.MethodGet, "me", nil, nil, "")
		var terr *TransportError
		require.True(t, errors.As(res.Err, &terr))
		assert.Zero(t, terr.StatusCode)
		assert.Equal(t, 1, logs.errors())
	})

	t.Run("unsupported method", func(t *testing.T) {
		f := newFakeGraph(t)
		c, _ := newTestClient(t, f)

		res := c.request(context.Background(), http.MethodPut, "me", nil, nil, "")
		assert.ErrorIs(t, res.Err, ErrUnsupportedMethod)
		assert.Empty(t, f.Calls())
	})
}

func TestResult_Map(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		res := failed(&ResolutionError{Target: "Nope"})
		assert.Equal(t, map[string]any{"error": `graph: page or user account "Nope" not found`}, res.Map())
	})

	t.Run("photos", func(t *testing.T) {
		res := Result{Photos: []Result{}}
		assert.Equal(t, map[string]any{"photos": []any{}}, res.Map())
	})

	t.Run("data", func(t *testing.T) {
		res := Result{Data: map[string]any{"id": "1"}}
		assert.Equal(t, map[string]any{"id": "1"}, res.Map())
		assert.Equal(t, "1", res.ID())
	})
}
