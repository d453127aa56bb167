package videolink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYouTubeLinks(t *testing.T) {
	cases := []struct {
		name string
		link string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch URL with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s"},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ"},
		{"short URL with params", "https://youtu.be/dQw4w9WgXcQ?si=abc"},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			embed, err := Parse(c.link)
			require.NoError(t, err)
			assert.Equal(t, ProviderYouTube, embed.Provider)
			assert.Equal(t, "dQw4w9WgXcQ", embed.VideoID)
			assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", embed.EmbedURL)
			assert.Empty(t, embed.LibraryID)
		})
	}
}

func TestParseBunnyLinks(t *testing.T) {
	cases := []struct {
		name string
		link string
	}{
		{"bunny reference", "bunny:12345/abcd-ef01"},
		{"embed URL", "https://iframe.mediadelivery.net/embed/12345/abcd-ef01"},
		{"embed URL with params", "https://iframe.mediadelivery.net/embed/12345/abcd-ef01?autoplay=true"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			embed, err := Parse(c.link)
			require.NoError(t, err)
			assert.Equal(t, ProviderBunny, embed.Provider)
			assert.Equal(t, "12345", embed.LibraryID)
			assert.Equal(t, "abcd-ef01", embed.VideoID)
			assert.Equal(t, "https://iframe.mediadelivery.net/embed/12345/abcd-ef01", embed.EmbedURL)
		})
	}
}

func TestParseRejectsUnknownLinks(t *testing.T) {
	cases := []string{
		"",
		"https://vimeo.com/12345",
		"bunny:missing-video-part",
		"https://iframe.mediadelivery.net/play/12345/abcd",
		"https://www.youtube.com/feed/subscriptions",
	}

	for _, link := range cases {
		_, err := Parse(link)
		assert.Error(t, err, "link %q should be rejected", link)
	}
}
