package bunny

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

const apiBase = "https://video.bunnycdn.com"

// Video processing statuses reported by the Stream API.
// 0 = Queued, 1 = Processing, 2 = Encoding, 3 = Finished,
// 4 = Resolution Finished, 5 = Failed.
const statusFinished = 3

// Video is the subset of the Bunny Stream video object this service uses.
type Video struct {
	GUID      string `json:"guid"`
	LibraryID int64  `json:"videoLibraryId"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Length    int    `json:"length"`
}

// Client talks to the Bunny Stream API for a single video library. The
// browser uploads video files to Bunny directly; this client only provisions
// and deletes video entries.
type Client struct {
	http      *resty.Client
	libraryID string
}

func NewClient(libraryID, apiKey string) *Client {
	http := resty.New().
		SetBaseURL(apiBase).
		SetHeader("AccessKey", apiKey).
		SetHeader("Content-Type", "application/json")

	return &Client{http: http, libraryID: libraryID}
}

// CreateVideo creates an empty video entry in the library and returns it.
// The file itself is uploaded separately against the returned GUID.
func (c *Client) CreateVideo(title string) (*Video, error) {
	var video Video
	resp, err := c.http.R().
		SetBody(map[string]interface{}{"title": title}).
		SetResult(&video).
		Post(fmt.Sprintf("/library/%s/videos", c.libraryID))
	if err != nil {
		return nil, fmt.Errorf("error creating video entry: %v", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error creating video entry: %s", resp.Status())
	}

	return &video, nil
}

// GetVideo fetches a video entry by its GUID.
func (c *Client) GetVideo(videoID string) (*Video, error) {
	var video Video
	resp, err := c.http.R().
		SetResult(&video).
		Get(fmt.Sprintf("/library/%s/videos/%s", c.libraryID, videoID))
	if err != nil {
		return nil, fmt.Errorf("error fetching video %v: %v", videoID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching video %v: %s", videoID, resp.Status())
	}

	return &video, nil
}

// DeleteVideo removes a video entry and its encoded renditions.
func (c *Client) DeleteVideo(videoID string) error {
	resp, err := c.http.R().
		Delete(fmt.Sprintf("/library/%s/videos/%s", c.libraryID, videoID))
	if err != nil {
		return fmt.Errorf("error deleting video %v: %v", videoID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("error deleting video %v: %s", videoID, resp.Status())
	}

	return nil
}

// IsVideoReady reports whether Bunny has finished processing the video.
func (c *Client) IsVideoReady(videoID string) (bool, error) {
	video, err := c.GetVideo(videoID)
	if err != nil {
		return false, err
	}
	return video.Status >= statusFinished, nil
}

// FormatVideoLink returns the canonical stored link for a library video.
func (c *Client) FormatVideoLink(videoID string) string {
	return fmt.Sprintf("bunny:%s/%s", c.libraryID, videoID)
}

// EmbedURL returns the playable iframe URL for a library video.
func (c *Client) EmbedURL(videoID string) string {
	return fmt.Sprintf("https://iframe.mediadelivery.net/embed/%s/%s", c.libraryID, videoID)
}
