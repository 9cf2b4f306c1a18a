package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StorePost records the data a platform returned for a published post.
func (s *Store) StorePost(ctx context.Context, postID, platform string, data map[string]any) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal post data: %w", err)
	}

	_, err = s.CreatePost(ctx, CreatePostParams{
		ID:        uuid.NewString(),
		PostID:    postID,
		Platform:  platform,
		Data:      string(doc),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert post %s: %w", postID, err)
	}
	return nil
}
