package aio

import (
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/source"
)

// Recommendations lists what to play after the content at url: an optional random
// episode followed by the record's own next, extra, album, previous and related items.
func (s *Source) Recommendations(url string) *pager.Page {
	tok := pager.First(pager.ContentPage)
	tok.URL = url

	if isDirectMedia(url) {
		return pager.Static(tok, s.withRandom(nil, ""))
	}

	rec, err := s.detailRecord(url)
	if err != nil {
		return s.degrade(tok, err)
	}

	currentID := parseContentURL(url).ContentID
	return pager.Static(tok, s.withRandom(s.norm.Recommendations(rec, currentID), currentID))
}

func (s *Source) withRandom(items []*source.ContentItem, currentID string) []*source.ContentItem {
	if random := s.randomEpisode(currentID); random != nil {
		return append([]*source.ContentItem{random}, items...)
	}
	return items
}
