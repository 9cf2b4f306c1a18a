package graph

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultPostsLimit is the page size GetPostsList uses when limit <= 0.
const DefaultPostsLimit = 10

// PostText publishes a message, and an optional link, to the target's feed.
func (c *Client) PostText(ctx context.Context, target, message, link string) Result {
	t, err := c.resolve(ctx, target)
	if err != nil {
		return failed(err)
	}
	return c.postText(ctx, t, message, link)
}

func (c *Client) postText(ctx context.Context, t Target, message, link string) Result {
	params := url.Values{"message": {message}}
	if link != "" {
		params.Set("link", link)
	}
	return c.request(ctx, http.MethodPost, t.ID+"/feed", params, nil, t.AccessToken)
}

// PostTextWithImages uploads each photo to the target, captioned with
// message. Uploads run one at a time in input order; a failed upload does
// not stop the rest.
func (c *Client) PostTextWithImages(ctx context.Context, target, message string, photos []Media) Result {
	t, err := c.resolve(ctx, target)
	if err != nil {
		return failed(err)
	}
	return c.postImages(ctx, t, message, photos)
}

func (c *Client) postImages(ctx context.Context, t Target, message string, photos []Media) Result {
	results := make([]Result, 0, len(photos))
	for _, photo := range photos {
		res := c.request(ctx, http.MethodPost, t.ID+"/photos",
			url.Values{"caption": {message}},
			&upload{field: "source", media: photo},
			t.AccessToken,
		)
		results = append(results, res)
	}
	return Result{Photos: results}
}

// PostTextWithVideo uploads a video to the target, described by message.
func (c *Client) PostTextWithVideo(ctx context.Context, target, message string, video Media) Result {
	t, err := c.resolve(ctx, target)
	if err != nil {
		return failed(err)
	}
	return c.postVideo(ctx, t, message, video)
}

func (c *Client) postVideo(ctx context.Context, t Target, message string, video Media) Result {
	return c.request(ctx, http.MethodPost, t.ID+"/videos",
		url.Values{"description": {message}},
		&upload{field: "source", media: video},
		t.AccessToken,
	)
}

// PostBulk posts each content item to the target in order and returns one
// Result per item, in input order. Items are independent: a failure does
// not affect the items after it.
func (c *Client) PostBulk(ctx context.Context, target string, contents []Content) []Result {
	results := make([]Result, len(contents))

	t, err := c.resolve(ctx, target)
	if err != nil {
		for i := range results {
			results[i] = failed(err)
		}
		return results
	}

	for i, content := range contents {
		results[i] = c.postContent(ctx, t, content)
	}
	return results
}

func (c *Client) postContent(ctx context.Context, t Target, content Content) Result {
	switch v := content.(type) {
	case *TextPost:
		content = deref(v)
	case *ImagePost:
		content = deref(v)
	case *VideoPost:
		content = deref(v)
	}

	var err error
	if content == nil {
		err = ErrInvalidContent
	} else {
		err = content.validate()
	}
	if err != nil {
		c.logger.Error("invalid bulk content", "error", err)
		return failed(err)
	}

	switch v := content.(type) {
	case ImagePost:
		return c.postImages(ctx, t, v.Message, v.Photos)
	case VideoPost:
		return c.postVideo(ctx, t, v.Message, v.Video)
	case TextPost:
		return c.postText(ctx, t, v.Message, v.Link)
	default:
		return failed(ErrInvalidContent)
	}
}

func deref[T Content](p *T) Content {
	if p == nil {
		return nil
	}
	return *p
}

// GetPostsList returns up to limit posts from the target's feed. The
// returned slice is never nil; it is empty when the call fails.
func (c *Client) GetPostsList(ctx context.Context, target string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = DefaultPostsLimit
	}

	t, err := c.resolve(ctx, target)
	if err != nil {
		return []map[string]any{}, err
	}

	res := c.request(ctx, http.MethodGet, t.ID+"/posts",
		url.Values{"limit": {strconv.Itoa(limit)}}, nil, t.AccessToken)
	if !res.OK() {
		return []map[string]any{}, res.Err
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := decode(res.Data, &body); err != nil {
		c.logger.Error("decode posts list", "error", err)
		return []map[string]any{}, err
	}
	if body.Data == nil {
		return []map[string]any{}, nil
	}
	return body.Data, nil
}

// EditPost replaces the message of a post. pageName must be "me" or a page
// known at construction; no fresh lookup is made.
func (c *Client) EditPost(ctx context.Context, postID, message, pageName string) Result {
	t, err := c.resolveStrict(pageName)
	if err != nil {
		return failed(err)
	}
	return c.request(ctx, http.MethodPost, postID, url.Values{"message": {message}}, nil, t.AccessToken)
}

// DeletePost removes a post. pageName follows the same rule as in EditPost.
func (c *Client) DeletePost(ctx context.Context, postID, pageName string) Result {
	t, err := c.resolveStrict(pageName)
	if err != nil {
		return failed(err)
	}
	return c.request(ctx, http.MethodDelete, postID, nil, nil, t.AccessToken)
}
