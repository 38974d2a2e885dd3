package aio

import (
	"cmp"
	"maps"
	"slices"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/normalize"
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

const (
	channelPageSize  = 25
	playlistPageSize = 200
	freeEpisodes     = 5
	freePrefix       = "FREE: "
)

func channelToken(kind pager.Kind, tok *pager.Token) pager.Token {
	t := pager.First(kind)
	if tok != nil {
		t = *tok
		t.Kind = kind
	}
	t.Filters = maps.Clone(t.Filters)
	if t.Filters == nil {
		t.Filters = map[string]string{}
	}
	t.Filters[filterListing] = listingChannel
	return t
}

// GetChannelContents lists the channel's episodes, newest first. A nil token means the first page.
func (s *Source) GetChannelContents(tok *pager.Token) *pager.Page {
	return s.fetch(channelToken(pager.ContentPage, tok))
}

// GetChannelPlaylists lists groupings of the configured type. A nil token means the first page.
func (s *Source) GetChannelPlaylists(tok *pager.Token) *pager.Page {
	return s.fetch(channelToken(pager.PlaylistPage, tok))
}

func (s *Source) fetchContents(tok pager.Token) (*pager.Result, error) {
	if tok.Filter(filterListing) == listingSearch {
		return s.search(tok)
	}
	if s.authenticated() {
		return s.clubEpisodes(tok)
	}
	return s.freeEpisodes(tok)
}

func (s *Source) fetchPlaylists(tok pager.Token) (*pager.Result, error) {
	if tok.Filter(filterListing) == listingSearch {
		return s.search(tok)
	}
	return s.groupings(tok)
}

// clubEpisodes is the member listing: everything by publish date, without articles.
func (s *Source) clubEpisodes(tok pager.Token) (*pager.Result, error) {
	page, err := s.client.SearchContent(upstream.ContentSearch{
		OrderBy:  upstream.OrderLastPublished,
		Page:     tok.Page,
		PageSize: channelPageSize,
	})
	if err != nil {
		return nil, err
	}

	list := lo.Filter(page.Results, func(c *upstream.Content, _ int) bool {
		if c == nil || c.Type == upstream.TypeArticle {
			return false
		}
		return c.Subtype != upstream.SubtypePodcast || s.settings.podcasts()
	})

	published := func(c *upstream.Content) int64 { return s.norm.UploadDate(c.LastPublished) }
	slices.SortStableFunc(list, func(a, b *upstream.Content) int {
		return cmp.Compare(published(b), published(a))
	})

	return &pager.Result{
		Contents:   lo.Map(list, func(c *upstream.Content, _ int) *source.ContentItem { return s.norm.Content(c) }),
		TotalPages: page.TotalPages.Int(),
	}, nil
}

// freeEpisodes is the anonymous listing: the latest aired episodes, optionally
// merged with podcasts. Always a single page.
func (s *Source) freeEpisodes(tok pager.Token) (*pager.Result, error) {
	page, err := s.client.SearchContent(upstream.ContentSearch{
		Type:     upstream.TypeAudio,
		Subtype:  upstream.SubtypeEpisode,
		OrderBy:  upstream.OrderRecentAir,
		Page:     tok.Page,
		PageSize: channelPageSize,
		Aired:    true,
	})
	if err != nil {
		return nil, err
	}

	free := lo.Map(lo.Slice(lo.Compact(page.Results), 0, freeEpisodes), func(c *upstream.Content, _ int) *source.ContentItem {
		item := s.norm.Content(c)
		item.Name = freePrefix + normalize.Name(c.Name, c.Short)
		item.UploadDate = s.norm.UploadDate(c.RecentAirDate, c.AirDate)
		return item
	})

	if !s.settings.podcasts() {
		return &pager.Result{Contents: pager.NewestFirst(free), TotalPages: 1}, nil
	}

	podcasts, err := s.client.SearchContent(upstream.ContentSearch{
		Subtype:  upstream.SubtypePodcast,
		OrderBy:  upstream.OrderLastPublished,
		Page:     1,
		PageSize: channelPageSize,
		Player:   true,
	})
	if err != nil {
		return nil, err
	}

	merged := append(free, lo.Map(lo.Compact(podcasts.Results), func(c *upstream.Content, _ int) *source.ContentItem {
		item := s.norm.Content(c)
		item.Name = normalize.Name(c.Name, c.Short)
		item.UploadDate = s.norm.UploadDate(c.LastPublished, c.AirDate)
		return item
	})...)
	slices.SortStableFunc(merged, func(a, b *source.ContentItem) int {
		return cmp.Compare(b.UploadDate, a.UploadDate)
	})

	return &pager.Result{Contents: merged, TotalPages: 1}, nil
}

// groupings lists the configured grouping type. User playlists need a session;
// anonymous viewers get albums instead.
func (s *Source) groupings(tok pager.Token) (*pager.Result, error) {
	typ := s.settings.GroupingType()
	query := upstream.GroupingQuery{
		Community: constant.Community,
		Page:      tok.Page,
		PageSize:  channelPageSize,
		Type:      typ,
	}

	if typ == upstream.GroupingPlaylist {
		if s.authenticated() {
			query = upstream.GroupingQuery{Page: tok.Page, PageSize: playlistPageSize, Type: typ}
		} else {
			log.Infof("playlists need a session, listing albums")
			query.Type = upstream.GroupingAlbum
		}
	}

	page, err := s.client.Groupings(query)
	if err != nil {
		return nil, err
	}

	list := lo.Compact(page.ContentGroupings)
	if typ == upstream.GroupingPlaylist {
		// the viewer's own playlists first
		slices.SortStableFunc(list, func(a, b *upstream.Grouping) int {
			return cmp.Compare(lo.Ternary(a.ViewerID != "", 0, 1), lo.Ternary(b.ViewerID != "", 0, 1))
		})
	}

	return &pager.Result{
		Playlists: lo.Map(list, func(g *upstream.Grouping, _ int) *source.PlaylistItem {
			return s.norm.PlaylistFromGrouping(g)
		}),
		TotalPages: page.Metadata.TotalPageCount.Int(),
	}, nil
}
