package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContents(t *testing.T) {
	t.Run("dispatches by shape", func(t *testing.T) {
		contents, err := ParseContents([]byte(`[
			{"message": "hello", "link": "https://example.com"},
			{"message": "pics", "photos": ["a.jpg", "b.jpg"]},
			{"message": "clip", "videos": ["one.mp4", "two.mp4"]},
			{"message": "both", "photos": [], "videos": ["v.mp4"]}
		]`))
		require.NoError(t, err)
		require.Len(t, contents, 4)

		assert.Equal(t, TextPost{Message: "hello", Link: "https://example.com"}, contents[0])

		img, ok := contents[1].(ImagePost)
		require.True(t, ok)
		require.Len(t, img.Photos, 2)
		assert.Equal(t, "a.jpg", img.Photos[0].Name())

		vid, ok := contents[2].(VideoPost)
		require.True(t, ok)
		assert.Equal(t, "one.mp4", vid.Video.Name())

		empty, ok := contents[3].(ImagePost)
		require.True(t, ok)
		assert.Empty(t, empty.Photos)
	})

	t.Run("rejects empty videos", func(t *testing.T) {
		_, err := ParseContents([]byte(`[{"message": "x", "videos": []}]`))
		assert.ErrorIs(t, err, ErrInvalidContent)
		assert.Contains(t, err.Error(), "content 0")
	})

	t.Run("rejects empty text post", func(t *testing.T) {
		_, err := ParseContents([]byte(`[{}]`))
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		_, err := ParseContents([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestContent_validate(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		wantErr bool
	}{
		{"text with message", TextPost{Message: "hi"}, false},
		{"text with link only", TextPost{Link: "https://example.com"}, false},
		{"text empty", TextPost{}, true},
		{"text too long", TextPost{Message: strings.Repeat("a", MaxMessageLength+1)}, true},
		{"images empty", ImagePost{Message: "x"}, false},
		{"images nil photo", ImagePost{Photos: []Media{nil}}, true},
		{"video missing", VideoPost{Message: "x"}, true},
		{"video", VideoPost{Video: Bytes("v.mp4", nil)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidContent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
