// Package mongostore records published posts in a MongoDB collection.
package mongostore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the collection posts are written to.
const Collection = "posts"

// Document is the stored form of a post.
type Document struct {
	PostID    string         `bson:"post_id"`
	Platform  string         `bson:"platform"`
	Data      map[string]any `bson:"data"`
	CreatedAt time.Time      `bson:"created_at"`
}

// Store writes post documents to MongoDB.
type Store struct {
	client *mongo.Client
	posts  *mongo.Collection
}

// Config holds configuration for the MongoDB store.
type Config struct {
	URI      string
	Database string
}

// New connects to MongoDB and verifies the connection.
func New(ctx context.Context, cfg Config) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Debug("connected to mongo", "database", cfg.Database)

	return &Store{
		client: client,
		posts:  client.Database(cfg.Database).Collection(Collection),
	}, nil
}

func newDocument(postID, platform string, data map[string]any) Document {
	if data == nil {
		data = map[string]any{}
	}
	return Document{
		PostID:    postID,
		Platform:  platform,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}

// StorePost inserts one post document.
func (s *Store) StorePost(ctx context.Context, postID, platform string, data map[string]any) error {
	if _, err := s.posts.InsertOne(ctx, newDocument(postID, platform, data)); err != nil {
		return fmt.Errorf("insert post %s: %w", postID, err)
	}
	return nil
}

// FindPost returns the most recent document stored for postID.
func (s *Store) FindPost(ctx context.Context, postID string) (*Document, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var doc Document
	if err := s.posts.FindOne(ctx, bson.M{"post_id": postID}, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("find post %s: %w", postID, err)
	}
	return &doc, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
