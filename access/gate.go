// Package access decides whether an anonymous listener may receive a playable source.
package access

import (
	"time"

	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/upstream"
)

// DefaultWindowDays is how long, inclusive, an aired episode stays free.
const DefaultWindowDays = 7

// AlwaysFree is the subtype that never needs a session.
const AlwaysFree = upstream.SubtypePodcast

// Candidate is the subset of a content record the gate looks at.
type Candidate struct {
	ID      string
	Subtype string

	// Label is a relative radio label such as "Aired Last Tuesday".
	Label string
	// AirDate is an absolute air date, used when Label is empty.
	AirDate string
}

// CandidateOf extracts the gate inputs from a content record.
func CandidateOf(c *upstream.Content) Candidate {
	return Candidate{
		ID:      c.ID,
		Subtype: c.Subtype,
		Label:   c.RelativeAirDay,
		AirDate: c.RecentAirDate,
	}
}

// Gate applies the free window. Now defaults to the wall clock.
type Gate struct {
	WindowDays int
	Now        func() time.Time
}

// New returns a gate with the given window. A zero or negative window, as left by a
// zero Settings value, falls back to the default.
func New(windowDays int) *Gate {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Gate{WindowDays: windowDays, Now: time.Now}
}

func (g *Gate) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

// AiredAt resolves the candidate's air date, preferring the relative label.
func (g *Gate) AiredAt(c Candidate) (time.Time, bool) {
	now := g.now()

	if c.Label != "" {
		if t, ok := AirDateFromLabel(c.Label, now); ok {
			return t, true
		}
	}

	return upstream.ParseTime(c.AirDate, now.Location())
}

// IsAccessible reports whether the viewer may play c. Unknown air dates fail closed.
func (g *Gate) IsAccessible(c Candidate, authenticated, override bool) bool {
	switch {
	case authenticated:
		return true
	case c.Subtype == AlwaysFree:
		return true
	case override:
		log.With(log.Fields{"content": c.ID}).Infof("access granted by override")
		return true
	}

	aired, ok := g.AiredAt(c)
	if !ok {
		log.With(log.Fields{"content": c.ID, "label": c.Label, "airDate": c.AirDate}).Debugf("no usable air date")
		return false
	}

	age := daysBetween(aired, g.now())
	return age >= 0 && age <= g.WindowDays
}

// Check is IsAccessible as an error: a refusal is KindAuthRequired.
func (g *Gate) Check(c Candidate, authenticated, override bool) error {
	if g.IsAccessible(c, authenticated, override) {
		return nil
	}
	return upstream.Errorf(upstream.KindAuthRequired, "login to listen to this episode")
}
