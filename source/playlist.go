package source

// PlaylistItem is an album, badge, theme or user playlist.
type PlaylistItem struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Author      Author `json:"author"`
	URL         string `json:"url"`
	ItemCount   int    `json:"itemCount"`
	Description string `json:"description,omitempty"`

	// Contents is only populated by detail fetches.
	Contents []*ContentItem `json:"contents,omitempty"`
}
