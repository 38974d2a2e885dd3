package source

import "time"

// Kind of playable media.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// MediaSource is a playable locator. Only detail fetches resolve one.
type MediaSource struct {
	Kind     Kind              `json:"kind"`
	Name     string            `json:"name"`
	URL      string            `json:"url"`
	Duration int64             `json:"duration"`
	Headers  map[string]string `json:"headers,omitempty"`
}

// ContentItem is a single episode, video or extra.
type ContentItem struct {
	ID          ID           `json:"id"`
	Name        string       `json:"name"`
	Thumbnails  []Thumbnail  `json:"thumbnails"`
	Author      Author       `json:"author"`
	Duration    int64        `json:"duration"`
	Views       int64        `json:"views"`
	UploadDate  int64        `json:"uploadDate"`
	URL         string       `json:"url"`
	Description string       `json:"description,omitempty"`
	Kind        Kind         `json:"kind,omitempty"`
	Media       *MediaSource `json:"media,omitempty"`
}

// Uploaded returns UploadDate as a time, or the zero time when unknown.
func (c *ContentItem) Uploaded() time.Time {
	if c.UploadDate == 0 {
		return time.Time{}
	}
	return time.Unix(c.UploadDate, 0)
}

// Playable reports whether a media source was resolved.
func (c *ContentItem) Playable() bool {
	return c.Media != nil && c.Media.URL != ""
}
