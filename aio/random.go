package aio

import (
	"slices"
	"strings"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/thread"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

// RandomEpisodeName labels the random pick at the head of recommendations.
const RandomEpisodeName = "🎲 Random Episode"

const episodePoolSize = 100

// restrictedAlbums hold episodes that are never free, so anonymous picks skip them.
var restrictedAlbums = []string{
	"Family Portraits",
	"The Officer Harley Collection",
	"#00: The Lost Episodes",
	"The Truth Chronicles",
}

func poolKey(unrestricted bool) string {
	if unrestricted {
		return "episodes:all"
	}
	return "episodes:open"
}

// episodePool returns the cached episode ids, building them on first use. A failed
// build is remembered by this Source only, so it is not retried until the process
// restarts and never reaches a persistent episode cache.
func (s *Source) episodePool(unrestricted bool) []string {
	key := poolKey(unrestricted)
	if ids, ok := s.episodes.Get(key).Get(); ok {
		return ids
	}
	if s.failedPools.Get(key).IsPresent() {
		return nil
	}

	ids, err := s.buildPool(unrestricted)
	if err != nil {
		log.Warnf("building episode pool: %v", err)
		_ = s.failedPools.Set(key, err)
		return nil
	}
	if err := s.episodes.Set(key, ids); err != nil {
		log.Warnf("caching episode pool: %v", err)
	}

	log.With(log.Fields{"pool": key, "size": len(ids)}).Infof("episode pool cached")
	return ids
}

func (s *Source) buildPool(unrestricted bool) ([]string, error) {
	page, err := s.client.Groupings(upstream.GroupingQuery{
		Community: constant.Community,
		Page:      1,
		PageSize:  episodePoolSize,
		Type:      upstream.GroupingAlbum,
	})
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, album := range lo.Compact(page.ContentGroupings) {
		if !unrestricted && (strings.Contains(album.Name, thread.BadgeMarker) || slices.Contains(restrictedAlbums, album.Name)) {
			continue
		}

		for _, ep := range album.ContentList {
			if ep == nil || ep.ID == "" || ep.Type != upstream.TypeAudio || ep.Subtype != upstream.SubtypeEpisode {
				continue
			}
			if strings.Contains(lo.CoalesceOrEmpty(ep.Name, ep.Short), "BONUS!") {
				continue
			}
			ids = append(ids, ep.ID)
		}
	}
	return ids, nil
}

// randomEpisode picks the recommendation head. It returns nil when disabled or
// when nothing can be picked.
func (s *Source) randomEpisode(currentID string) *source.ContentItem {
	if !s.settings.FetchRandomEpisode {
		return nil
	}

	authenticated := s.authenticated()

	var id string
	switch {
	case authenticated && !s.settings.FasterRandom:
		rec, err := s.client.Random()
		if err != nil {
			log.Warnf("random episode: %v", err)
			return nil
		}
		id = rec.ID
	default:
		pool := lo.Without(s.episodePool(authenticated), currentID)
		if len(pool) == 0 {
			return nil
		}
		id = pool[s.pick(len(pool))]
	}

	if id == "" {
		return nil
	}

	return &source.ContentItem{
		ID:         source.NewID(id),
		Name:       RandomEpisodeName,
		Thumbnails: source.Thumbnails(constant.RandomThumbnailURL),
		Author:     source.PlatformAuthor(),
		URL:        constant.ContentURL + id,
		Kind:       source.KindAudio,
	}
}
