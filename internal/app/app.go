package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/abdulachik/fbpost/internal/config"
	"github.com/abdulachik/fbpost/internal/graph"
	"github.com/abdulachik/fbpost/internal/store"
)

// Platform is the provider name posts are recorded under.
const Platform = "facebook"

// App is the main application container holding all dependencies.
type App struct {
	Config *config.Config
	Client *graph.Client
	Store  store.PostStore
}

// New creates a new application instance. The post store is opened only
// when withStore is set.
func New(ctx context.Context, cfg *config.Config, withStore bool) (*App, error) {
	a := &App{Config: cfg}

	if withStore {
		s, err := store.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.Store = s
	}

	a.Client = graph.New(ctx, graph.Config{
		AccessToken: cfg.AccessToken,
		BaseURL:     cfg.GraphAPIURL,
		Version:     cfg.GraphVersion,
		HTTPClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:      slog.Default().With("component", "graph"),
	})

	return a, nil
}

// Record stores every successful post in res: the post itself, or each
// uploaded photo of an image post. It returns the number of records written.
// Store failures are logged and skipped.
func (a *App) Record(ctx context.Context, res graph.Result) int {
	if a.Store == nil || !res.OK() {
		return 0
	}

	if res.Photos != nil {
		n := 0
		for _, photo := range res.Photos {
			n += a.Record(ctx, photo)
		}
		return n
	}

	id := res.ID()
	if id == "" {
		return 0
	}
	if err := a.Store.StorePost(ctx, id, Platform, res.Map()); err != nil {
		slog.Warn("failed to record post", "post_id", id, "error", err)
		return 0
	}
	return 1
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
