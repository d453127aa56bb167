package videolink

import (
	"fmt"
	"strings"

	"courseware/internal/apperrors"
)

type Provider string

const (
	ProviderYouTube Provider = "youtube"
	ProviderBunny   Provider = "bunny"
)

// Embed is a normalized, playable reference parsed from a stored video link.
type Embed struct {
	Provider Provider `json:"provider"`
	VideoID  string   `json:"videoID"`
	// LibraryID is only set for Bunny videos.
	LibraryID string `json:"libraryID,omitempty"`
	EmbedURL  string `json:"embedURL"`
}

// Parse normalizes a stored video link into a playable embed reference.
// Recognized shapes:
//
//	bunny:LIBRARY_ID/VIDEO_ID
//	https://iframe.mediadelivery.net/embed/LIBRARY_ID/VIDEO_ID
//	https://www.youtube.com/watch?v=VIDEO_ID
//	https://youtu.be/VIDEO_ID
//	https://www.youtube.com/embed/VIDEO_ID
func Parse(link string) (*Embed, error) {
	switch {
	case strings.HasPrefix(link, "bunny:"), strings.Contains(link, "mediadelivery.net"), strings.Contains(link, "bunnycdn.com"):
		return parseBunny(link)
	case strings.Contains(link, "youtube.com"), strings.Contains(link, "youtu.be"):
		return parseYouTube(link)
	}
	return nil, apperrors.UnknownVideoLinkError
}

func parseBunny(link string) (*Embed, error) {
	var ref string
	switch {
	case strings.HasPrefix(link, "bunny:"):
		ref = strings.TrimPrefix(link, "bunny:")
	case strings.Contains(link, "mediadelivery.net/embed/"):
		ref = strings.SplitN(link, "/embed/", 2)[1]
		ref = strings.SplitN(ref, "?", 2)[0]
	default:
		return nil, apperrors.UnknownVideoLinkError
	}

	parts := strings.Split(strings.Trim(ref, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, apperrors.UnknownVideoLinkError
	}

	return &Embed{
		Provider:  ProviderBunny,
		LibraryID: parts[0],
		VideoID:   parts[1],
		EmbedURL:  fmt.Sprintf("https://iframe.mediadelivery.net/embed/%s/%s", parts[0], parts[1]),
	}, nil
}

func parseYouTube(link string) (*Embed, error) {
	var id string
	switch {
	case strings.Contains(link, "youtube.com/watch?v="):
		id = strings.SplitN(link, "v=", 2)[1]
		id = strings.SplitN(id, "&", 2)[0]
	case strings.Contains(link, "youtu.be/"):
		id = strings.SplitN(link, "youtu.be/", 2)[1]
		id = strings.SplitN(id, "?", 2)[0]
	case strings.Contains(link, "youtube.com/embed/"):
		id = strings.SplitN(link, "embed/", 2)[1]
		id = strings.SplitN(id, "?", 2)[0]
	}

	id = strings.Trim(id, "/")
	if id == "" {
		return nil, apperrors.UnknownVideoLinkError
	}

	return &Embed{
		Provider: ProviderYouTube,
		VideoID:  id,
		EmbedURL: "https://www.youtube.com/embed/" + id,
	}, nil
}
