package graph

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// MaxMessageLength is the longest message the feed accepts, in characters.
const MaxMessageLength = 63206

// Content is one item of a bulk post: a TextPost, an ImagePost or a VideoPost.
type Content interface {
	validate() error
}

// TextPost is a plain feed post with an optional link.
type TextPost struct {
	Message string
	Link    string
}

// ImagePost uploads each photo with Message as its caption.
type ImagePost struct {
	Message string
	Photos  []Media
}

// VideoPost uploads a single video with Message as its description.
type VideoPost struct {
	Message string
	Video   Media
}

func (p TextPost) validate() error {
	if p.Message == "" && p.Link == "" {
		return fmt.Errorf("%w: text post needs a message or a link", ErrInvalidContent)
	}
	return checkLength(p.Message)
}

func (p ImagePost) validate() error {
	for i, photo := range p.Photos {
		if photo == nil {
			return fmt.Errorf("%w: photo %d is nil", ErrInvalidContent, i)
		}
	}
	return checkLength(p.Message)
}

func (p VideoPost) validate() error {
	if p.Video == nil {
		return fmt.Errorf("%w: video post needs a video", ErrInvalidContent)
	}
	return checkLength(p.Message)
}

func checkLength(message string) error {
	if n := utf8.RuneCountInString(message); n > MaxMessageLength {
		return fmt.Errorf("%w: message is %d characters, limit is %d", ErrInvalidContent, n, MaxMessageLength)
	}
	return nil
}

// Descriptor is the loosely keyed JSON form of a bulk item.
type Descriptor struct {
	Message string   `json:"message,omitempty"`
	Link    string   `json:"link,omitempty"`
	Photos  []string `json:"photos,omitempty"`
	Videos  []string `json:"videos,omitempty"`
}

// Content converts a descriptor to its Content variant. Photos take
// precedence over videos; only the first video of a descriptor is posted.
func (d Descriptor) Content() (Content, error) {
	var c Content
	switch {
	case d.Photos != nil:
		photos := make([]Media, len(d.Photos))
		for i, path := range d.Photos {
			photos[i] = File(path)
		}
		c = ImagePost{Message: d.Message, Photos: photos}
	case d.Videos != nil:
		if len(d.Videos) == 0 {
			return nil, fmt.Errorf("%w: empty videos list", ErrInvalidContent)
		}
		if len(d.Videos) > 1 {
			slog.Warn("only the first video of a post is uploaded",
				"posted", d.Videos[0],
				"ignored", len(d.Videos)-1,
			)
		}
		c = VideoPost{Message: d.Message, Video: File(d.Videos[0])}
	default:
		c = TextPost{Message: d.Message, Link: d.Link}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseContents decodes a JSON array of descriptors.
func ParseContents(data []byte) ([]Content, error) {
	var descriptors []Descriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("parse contents: %w", err)
	}

	contents := make([]Content, 0, len(descriptors))
	for i, d := range descriptors {
		c, err := d.Content()
		if err != nil {
			return nil, fmt.Errorf("content %d: %w", i, err)
		}
		contents = append(contents, c)
	}
	return contents, nil
}
