// Package aio is the host-facing side of the plugin: every operation a host calls
// on the Adventures in Odyssey Club lives on Source.
//
// Single-item operations return classified errors (see package upstream). Listing
// operations never fail: upstream trouble is logged and becomes an empty page.
package aio

import (
	"math/rand/v2"
	"time"

	"github.com/odyssey-club/aiosource/access"
	"github.com/odyssey-club/aiosource/internal/cache"
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/network"
	"github.com/odyssey-club/aiosource/normalize"
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/thread"
	"github.com/odyssey-club/aiosource/upstream"
)

// Authenticator reports whether the host holds a session. An error counts as anonymous.
type Authenticator interface {
	IsAuthenticated() (bool, error)
}

// AuthFunc adapts a function to Authenticator.
type AuthFunc func() (bool, error)

func (f AuthFunc) IsAuthenticated() (bool, error) {
	return f()
}

// Anonymous never holds a session.
var Anonymous Authenticator = AuthFunc(func() (bool, error) { return false, nil })

// Provider is the set of operations a host drives.
type Provider interface {
	GetChannel(url string) *source.Channel
	GetContentDetails(url string) (*source.ContentItem, error)
	Recommendations(url string) *pager.Page
	GetPlaylist(url string) (*source.PlaylistItem, error)
	Search(query, category string) *pager.Page
	SearchSuggestions(query string) []string
	GetChannelContents(tok *pager.Token) *pager.Page
	GetChannelPlaylists(tok *pager.Token) *pager.Page
	GetComments(url string, tok *pager.Token) *pager.Page
	Replies(comment *source.CommentItem) *pager.Page
	Next(page *pager.Page) *pager.Page
}

var _ Provider = (*Source)(nil)

// Source is safe for concurrent use.
type Source struct {
	settings Settings
	auth     Authenticator
	client   *upstream.Client
	gate     *access.Gate
	resolver *thread.Resolver
	norm     *normalize.Normalizer
	engine   *pager.Engine

	episodes    cache.Cache[string, []string]
	failedPools *cache.Memory[string, error]
	suggestions Suggester
	pick        func(n int) int
}

// Suggester supplies search suggestions, typically from query history.
type Suggester interface {
	Suggest(query string) []string
}

// Option customizes a Source.
type Option func(*Source)

// WithThreadCache replaces the process-lifetime thread cache.
func WithThreadCache(c cache.Cache[string, thread.Target]) Option {
	return func(s *Source) {
		s.resolver = thread.NewResolver(s.client, c)
	}
}

// WithEpisodeCache replaces the process-lifetime random-episode pool cache.
func WithEpisodeCache(c cache.Cache[string, []string]) Option {
	return func(s *Source) {
		s.episodes = c
	}
}

// WithClock fixes "now" for the access gate and the normalizer.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		s.gate.Now = now
		s.norm.Now = now
	}
}

// WithPicker replaces the random index picker used for the random episode.
func WithPicker(pick func(n int) int) Option {
	return func(s *Source) {
		s.pick = pick
	}
}

// WithSuggester sets where search suggestions come from.
func WithSuggester(sg Suggester) Option {
	return func(s *Source) {
		s.suggestions = sg
	}
}

// New returns a Source talking through gateway. A nil auth means anonymous.
func New(gateway network.Gateway, auth Authenticator, settings Settings, options ...Option) *Source {
	if auth == nil {
		auth = Anonymous
	}

	client := upstream.NewClient(gateway)
	s := &Source{
		settings: settings,
		auth:     auth,
		client:   client,
		gate:     access.New(settings.FreeWindowDays),
		resolver: thread.NewResolver(client, nil),
		norm:     normalize.New(settings.Caps, settings.Debug),
		engine:   pager.New(),
		episodes: cache.NewMemory[string, []string](),
		pick:     rand.IntN,

		failedPools: cache.NewMemory[string, error](),
	}

	for _, opt := range options {
		opt(s)
	}

	s.engine.Register(pager.ContentPage, s.fetchContents)
	s.engine.Register(pager.PlaylistPage, s.fetchPlaylists)
	s.engine.Register(pager.CommentPage, s.fetchComments)

	return s
}

// Settings returns the configuration the source was built with.
func (s *Source) Settings() Settings {
	return s.settings
}

// authenticated asks the host, treating errors and panics as anonymous.
func (s *Source) authenticated() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("session check panicked: %v", r)
			ok = false
		}
	}()

	ok, err := s.auth.IsAuthenticated()
	if err != nil {
		log.Warnf("session check failed: %v", err)
		return false
	}
	return ok
}

// GetChannel describes the club channel.
func (s *Source) GetChannel(url string) *source.Channel {
	return source.ClubChannel(url)
}

// Next continues any page produced by this source.
func (s *Source) Next(page *pager.Page) *pager.Page {
	next, err := s.engine.Next(page)
	if err != nil {
		return s.degrade(nextToken(page), err)
	}
	return next
}

func nextToken(page *pager.Page) pager.Token {
	if page == nil {
		return pager.First(pager.ContentPage)
	}
	return page.Next
}

// degrade turns a listing failure into an empty page.
func (s *Source) degrade(tok pager.Token, err error) *pager.Page {
	log.With(log.Fields{"kind": tok.Kind, "page": tok.Page, "error_kind": upstream.KindOf(err).String()}).
		Warnf("listing degraded to an empty page: %v", err)
	return pager.Empty(tok)
}

// fetch runs the engine and degrades on error.
func (s *Source) fetch(tok pager.Token) *pager.Page {
	page, err := s.engine.Fetch(tok)
	if err != nil {
		return s.degrade(tok, err)
	}
	return page
}
