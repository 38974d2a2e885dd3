package aio

import (
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/normalize"
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

// Search categories.
const (
	CategoryMixed     = ""
	CategoryVideos    = "videos"
	CategoryPlaylists = "playlists"
	CategoryBadges    = "badges"
)

const searchPageSize = 30

// listing filter values separating searches from channel listings of the same kind
const (
	filterListing  = "listing"
	listingSearch  = "search"
	listingChannel = "channel"
)

func searchToken(query, category string) pager.Token {
	kind := pager.ContentPage
	if category == CategoryPlaylists || category == CategoryBadges {
		kind = pager.PlaylistPage
	}

	tok := pager.First(kind)
	tok.Query = query
	tok.Category = category
	tok.Filters = map[string]string{filterListing: listingSearch}
	return tok
}

// Search runs a full-text search. Mixed searches return videos, playlists and badges,
// each ranked against the query.
func (s *Source) Search(query, category string) *pager.Page {
	return s.fetch(searchToken(query, category))
}

// SearchSuggestions completes query from previous searches.
func (s *Source) SearchSuggestions(query string) []string {
	if s.suggestions == nil {
		return nil
	}
	return s.suggestions.Suggest(query)
}

func (s *Source) search(tok pager.Token) (*pager.Result, error) {
	objects := []upstream.SearchObject{
		upstream.ContentObject(searchPageSize),
		upstream.GroupingObject(searchPageSize),
	}
	if s.settings.Caps.Badges {
		objects = append(objects, upstream.BadgeObject(searchPageSize))
	}

	resp, err := s.client.Search(upstream.SearchQuery{Term: tok.Query, Objects: objects})
	if err != nil {
		return nil, err
	}

	var (
		videos    []*source.ContentItem
		playlists []*source.PlaylistItem
		badges    []*source.PlaylistItem
	)
	for _, section := range lo.Compact(resp.ResultObjects) {
		for _, hit := range section.Results {
			if hit == nil || hit.ID == "" {
				continue
			}
			switch section.ObjectName {
			case upstream.ObjectGrouping:
				playlists = append(playlists, s.norm.PlaylistFromSearch(hit))
			case upstream.ObjectBadge:
				badges = append(badges, s.norm.PlaylistFromSearch(hit))
			default:
				videos = append(videos, s.norm.ContentFromSearch(hit))
			}
		}
	}

	log.With(log.Fields{"query": tok.Query, "videos": len(videos), "playlists": len(playlists), "badges": len(badges)}).
		Debugf("search results")

	videoName := func(c *source.ContentItem) string { return c.Name }
	playlistName := func(p *source.PlaylistItem) string { return p.Name }

	switch tok.Category {
	case CategoryVideos:
		return &pager.Result{Contents: normalize.Rank(videos, tok.Query, videoName)}, nil
	case CategoryPlaylists:
		return &pager.Result{Playlists: normalize.Rank(playlists, tok.Query, playlistName)}, nil
	case CategoryBadges:
		return &pager.Result{Playlists: normalize.Rank(badges, tok.Query, playlistName)}, nil
	default:
		return &pager.Result{
			Contents:  normalize.Rank(videos, tok.Query, videoName),
			Playlists: normalize.Rank(append(playlists, badges...), tok.Query, playlistName),
		}, nil
	}
}
