// Package normalize projects upstream records onto the host item model.
//
// Projections never fail on missing optional fields: names default to "Untitled",
// counts and durations to zero, thumbnails to "".
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

// Untitled names records that carry no name at all.
const Untitled = "Untitled"

// averageEpisode estimates how many episodes a grouping holds from its total runtime.
const averageEpisode = 23 * time.Minute

// Capabilities switch optional platform features on and off.
type Capabilities struct {
	Badges      bool `json:"badges"`
	Themes      bool `json:"themes"`
	Podcasts    bool `json:"podcasts"`
	DirectMedia bool `json:"directMedia"`
}

// AllCapabilities enables every feature.
func AllCapabilities() Capabilities {
	return Capabilities{Badges: true, Themes: true, Podcasts: true, DirectMedia: true}
}

// Normalizer is stateless apart from its configuration and safe for concurrent use.
type Normalizer struct {
	Caps Capabilities
	// Debug appends raw record fields to descriptions.
	Debug bool
	// Location dates without a zone are read in. Defaults to UTC.
	Location *time.Location
	// Now defaults to the wall clock.
	Now func() time.Time
}

func New(caps Capabilities, debug bool) *Normalizer {
	return &Normalizer{Caps: caps, Debug: debug, Location: time.UTC, Now: time.Now}
}

func (n *Normalizer) location() *time.Location {
	if n.Location == nil {
		return time.UTC
	}
	return n.Location
}

func (n *Normalizer) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

// Seconds converts upstream milliseconds, rounding down. Negative values become 0.
func Seconds(ms upstream.Number) int64 {
	if ms <= 0 {
		return 0
	}
	return ms.Int64() / 1000
}

// RuntimeCount estimates an episode count from a total runtime in milliseconds.
func RuntimeCount(ms upstream.Number) int {
	if ms <= 0 {
		return 0
	}
	return int(math.Round(float64(ms) / float64(averageEpisode.Milliseconds())))
}

// UploadDate returns the first candidate that parses to a real date as epoch seconds, or 0.
func (n *Normalizer) UploadDate(candidates ...string) int64 {
	for _, c := range candidates {
		if t, ok := upstream.ParseTime(c, n.location()); ok {
			return t.Unix()
		}
	}
	return 0
}

// Name returns the first non-empty candidate, or Untitled.
func Name(candidates ...string) string {
	name := lo.CoalesceOrEmpty(lo.Map(candidates, func(s string, _ int) string {
		return strings.TrimSpace(s)
	})...)
	if name == "" {
		return Untitled
	}
	return name
}

// YearStart is January 1st of the given year, or of the current year when year is not a number.
func (n *Normalizer) YearStart(year string) int64 {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y <= 0 {
		y = n.now().In(n.location()).Year()
	}
	return time.Date(y, time.January, 1, 0, 0, 0, 0, n.location()).Unix()
}

func kindOf(typ string) source.Kind {
	if typ == upstream.TypeVideo {
		return source.KindVideo
	}
	return source.KindAudio
}

// Content projects a listing record.
func (n *Normalizer) Content(rec *upstream.Content) *source.ContentItem {
	return &source.ContentItem{
		ID:         source.NewID(rec.ID),
		Name:       Name(rec.Short, rec.Name),
		Thumbnails: source.Thumbnails(rec.ThumbnailSmall),
		Author:     source.PlatformAuthor(),
		Duration:   Seconds(rec.MediaLength),
		Views:      max(rec.Views.Int64(), 0),
		UploadDate: n.UploadDate(rec.AirDate, rec.LastPublished, rec.RecentAirDate),
		URL:        constant.ContentURL + rec.ID,
		Kind:       kindOf(rec.Type),
	}
}

// Member projects a playlist member. Members link through link_to_id and share
// the playlist's upload date.
func (n *Normalizer) Member(rec *upstream.Content, uploadDate int64) *source.ContentItem {
	id := lo.CoalesceOrEmpty(rec.LinkToID, rec.ID)

	item := n.Content(rec)
	item.ID = source.NewID(id)
	item.URL = constant.ContentURL + id
	item.UploadDate = uploadDate
	return item
}

// Members projects the playable records of list.
func (n *Normalizer) Members(list []*upstream.Content, uploadDate int64) []*source.ContentItem {
	playable := lo.Filter(list, func(c *upstream.Content, _ int) bool {
		return c.Playable()
	})
	return lo.Map(playable, func(c *upstream.Content, _ int) *source.ContentItem {
		return n.Member(c, uploadDate)
	})
}

// Recommendations merges next episode, extras, album siblings, previous episode and
// generic recommendations in that order. Duplicates keep their first position and
// currentID is left out.
func (n *Normalizer) Recommendations(rec *upstream.Content, currentID string) []*source.ContentItem {
	var combined []*upstream.Content
	if rec.NextEpisode.Playable() {
		combined = append(combined, rec.NextEpisode)
	}
	combined = append(combined, lo.Filter(rec.Extras, func(c *upstream.Content, _ int) bool { return c.Playable() })...)
	combined = append(combined, rec.InAlbum...)
	if rec.PreviousEpisode.Playable() {
		combined = append(combined, rec.PreviousEpisode)
	}
	combined = append(combined, rec.Recommendations...)

	combined = lo.Filter(combined, func(c *upstream.Content, _ int) bool {
		return c != nil && c.ID != "" && c.ID != currentID
	})
	combined = lo.UniqBy(combined, func(c *upstream.Content) string { return c.ID })

	return lo.Map(combined, func(c *upstream.Content, _ int) *source.ContentItem {
		return n.Content(c)
	})
}
