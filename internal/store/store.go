// Package store selects the sink published posts are recorded in.
package store

import (
	"context"
	"fmt"

	"github.com/abdulachik/fbpost/internal/config"
	"github.com/abdulachik/fbpost/internal/db"
	"github.com/abdulachik/fbpost/internal/mongostore"
)

// PostStore records the data returned for a published post, keyed by post
// id and platform name.
type PostStore interface {
	StorePost(ctx context.Context, postID, platform string, data map[string]any) error
	Close() error
}

var (
	_ PostStore = (*db.Store)(nil)
	_ PostStore = (*mongostore.Store)(nil)
)

// Open returns the post store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (PostStore, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite, "":
		s, err := db.NewStore(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return s, nil
	case config.DriverMongo:
		s, err := mongostore.New(ctx, mongostore.Config{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
