package aio

import (
	"strings"

	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
)

// GetPlaylist fetches a grouping, badge or theme with its playable members.
func (s *Source) GetPlaylist(url string) (*source.PlaylistItem, error) {
	id := lastSegment(url)
	if id == "" {
		return nil, upstream.Errorf(upstream.KindNotFound, "no playlist id in %q", url)
	}

	log.With(log.Fields{"playlist": id, "url": url}).Debugf("fetching playlist")

	switch {
	case strings.Contains(url, "/badges/"):
		if !s.settings.Caps.Badges {
			return nil, upstream.Errorf(upstream.KindNotSupportedFormat, "badges are disabled")
		}
		b, err := s.client.Badge(id)
		if err != nil {
			return nil, err
		}
		return s.norm.BadgeDetails(id, url, b), nil

	case strings.Contains(url, "/themes/"):
		if !s.settings.Caps.Themes {
			return nil, upstream.Errorf(upstream.KindNotSupportedFormat, "themes are disabled")
		}
		t, err := s.client.Topic(id)
		if err != nil {
			return nil, err
		}
		return s.norm.TopicDetails(id, url, t), nil

	default:
		g, err := s.client.Grouping(id)
		if err != nil {
			return nil, err
		}
		return s.norm.GroupingDetails(id, url, g), nil
	}
}
