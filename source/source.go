// Package source defines the items the plugin hands to its host.
//
// Items are built fresh on every fetch and never mutated afterwards.
package source

import "github.com/odyssey-club/aiosource/constant"

// ID identifies an item on the platform.
type ID struct {
	Platform string `json:"platform"`
	Value    string `json:"value"`
}

// NewID returns an ID on this platform.
func NewID(value string) ID {
	return ID{Platform: constant.PlatformName, Value: value}
}

func (id ID) String() string {
	return id.Value
}

type Thumbnail struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
}

// Thumbnails returns a single 128px candidate. A missing URL stays "".
func Thumbnails(url string) []Thumbnail {
	return []Thumbnail{{URL: url, Height: 128}}
}

// Author links an item to a person or to the platform itself.
type Author struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// PlatformAuthor attributes items to the club itself.
func PlatformAuthor() Author {
	return Author{
		ID:        NewID(constant.PlatformLink),
		Name:      constant.PlatformName,
		URL:       constant.PlatformLink,
		Thumbnail: constant.LogoURL,
	}
}
