package db

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// New returns queries bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds the prepared SQL used by the store.
type Queries struct {
	db DBTX
}

// WithTx returns queries bound to tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Post is one recorded post.
type Post struct {
	ID        string
	PostID    string
	Platform  string
	Data      string // JSON document returned by the platform
	CreatedAt time.Time
}

const createPost = `
INSERT INTO posts (id, post_id, platform, data, created_at)
VALUES (?, ?, ?, ?, ?)
`

// CreatePostParams holds the columns of a new post row.
type CreatePostParams struct {
	ID        string
	PostID    string
	Platform  string
	Data      string
	CreatedAt time.Time
}

func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	_, err := q.db.ExecContext(ctx, createPost,
		arg.ID,
		arg.PostID,
		arg.Platform,
		arg.Data,
		arg.CreatedAt.Unix(),
	)
	if err != nil {
		return Post{}, err
	}
	return Post{
		ID:        arg.ID,
		PostID:    arg.PostID,
		Platform:  arg.Platform,
		Data:      arg.Data,
		CreatedAt: time.Unix(arg.CreatedAt.Unix(), 0),
	}, nil
}

const listPosts = `
SELECT id, post_id, platform, data, created_at FROM posts
WHERE platform = ?
ORDER BY created_at DESC, rowid DESC
LIMIT ?
`

func (q *Queries) ListPosts(ctx context.Context, platform string, limit int64) ([]Post, error) {
	rows, err := q.db.QueryContext(ctx, listPosts, platform, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Post
	for rows.Next() {
		var (
			i         Post
			createdAt int64
		)
		if err := rows.Scan(&i.ID, &i.PostID, &i.Platform, &i.Data, &createdAt); err != nil {
			return nil, err
		}
		i.CreatedAt = time.Unix(createdAt, 0)
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countPosts = `SELECT COUNT(*) FROM posts`

func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPosts).Scan(&count)
	return count, err
}
