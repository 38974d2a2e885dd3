package normalize

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
)

// Search hit column values that route to badge pages.
const (
	subtypeAdventure = "Adventure"
	groupingBadge    = "Badge"
)

// ContentFromSearch projects a content hit. Adventure hits are badges in disguise.
func (n *Normalizer) ContentFromSearch(hit *upstream.SearchHit) *source.ContentItem {
	name := Name(hit.Col(1))
	if number := strings.TrimSpace(hit.Col(4)); number != "" {
		name = "#" + number + ": " + name
	}

	prefix := constant.ContentURL
	if n.Caps.Badges && hit.Col(3) == subtypeAdventure {
		prefix = constant.BadgeURL
	}

	return &source.ContentItem{
		ID:         source.NewID(hit.ID),
		Name:       name,
		Thumbnails: source.Thumbnails(hit.Col(2)),
		Author:     source.PlatformAuthor(),
		URL:        prefix + hit.ID,
		Kind:       source.KindAudio,
	}
}

// PlaylistFromSearch projects a grouping or badge hit. Groupings report a total
// runtime in column 3, from which the item count is estimated.
func (n *Normalizer) PlaylistFromSearch(hit *upstream.SearchHit) *source.PlaylistItem {
	prefix := constant.GroupURL
	if col := hit.Col(3); n.Caps.Badges && (col == groupingBadge || col == subtypeAdventure) {
		prefix = constant.BadgeURL
	}

	return &source.PlaylistItem{
		ID:        source.NewID(hit.ID),
		Name:      Name(hit.Col(1)),
		Thumbnail: hit.Col(2),
		Author:    source.PlatformAuthor(),
		URL:       prefix + hit.ID,
		ItemCount: RuntimeCount(upstream.ParseNumber(hit.Col(3))),
	}
}

// Rank orders items by how well name matches query: exact matches first, then
// matches by earliest position, then everything else. Ties keep their order.
func Rank[T any](items []T, query string, name func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	score := func(item T) int {
		title := strings.ToLower(name(item))
		if title == q {
			return 0
		}
		if idx := strings.Index(title, q); idx >= 0 {
			return idx + 1
		}
		return math.MaxInt
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(score(a), score(b))
	})
	return out
}
