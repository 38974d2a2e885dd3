package normalize

import (
	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

// UntitledAlbum names channel groupings without any name.
const UntitledAlbum = "Untitled Album"

// PlaylistFromGrouping projects a grouping listed on the channel.
func (n *Normalizer) PlaylistFromGrouping(g *upstream.Grouping) *source.PlaylistItem {
	name := lo.CoalesceOrEmpty(g.Name, g.AlbumName, UntitledAlbum)

	return &source.PlaylistItem{
		ID:          source.NewID(g.ID),
		Name:        name,
		Thumbnail:   lo.CoalesceOrEmpty(g.ImageURL, g.ThumbnailMedium),
		Author:      source.PlatformAuthor(),
		URL:         constant.GroupURL + g.ID,
		ItemCount:   len(g.ContentList),
		Description: g.Description,
	}
}

func (n *Normalizer) details(id, url, name, thumbnail, description, year string, list []*upstream.Content) *source.PlaylistItem {
	contents := n.Members(list, n.YearStart(year))

	return &source.PlaylistItem{
		ID:          source.NewID(id),
		Name:        name,
		Thumbnail:   thumbnail,
		Author:      source.PlatformAuthor(),
		URL:         url,
		ItemCount:   len(contents),
		Description: description,
		Contents:    contents,
	}
}

// GroupingDetails projects an album or playlist with its members.
func (n *Normalizer) GroupingDetails(id, url string, g *upstream.Grouping) *source.PlaylistItem {
	return n.details(id, url,
		lo.CoalesceOrEmpty(g.Name, "Playlist "+id),
		lo.CoalesceOrEmpty(g.ImageURL, g.ThumbnailMedium),
		g.Description, g.CopyrightYear.String(), g.ContentList)
}

// BadgeDetails projects a badge; its members are the content each requirement asks to complete.
func (n *Normalizer) BadgeDetails(id, url string, b *upstream.Badge) *source.PlaylistItem {
	var list []*upstream.Content
	for _, r := range b.Requirements {
		if r != nil && r.ContentToComplete != nil && r.ContentToComplete.Type != "" {
			list = append(list, r.ContentToComplete)
		}
	}

	return n.details(id, url,
		lo.CoalesceOrEmpty(b.Name, "Badge "+id),
		lo.CoalesceOrEmpty(b.ImageURL, b.ThumbnailMedium, b.Icon),
		b.Description, b.CopyrightYear.String(), list)
}

// TopicDetails projects a theme with its recommended content.
func (n *Normalizer) TopicDetails(id, url string, t *upstream.Topic) *source.PlaylistItem {
	return n.details(id, url,
		lo.CoalesceOrEmpty(t.Name, "Theme "+id),
		lo.CoalesceOrEmpty(t.ImageURL, t.ThumbnailMedium),
		t.Description, t.CopyrightYear.String(), t.Recommendations)
}
