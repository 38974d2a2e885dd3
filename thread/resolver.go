// Package thread locates the discussion thread that holds a content item's comments.
//
// Comments are anchored on the content itself, on the album that contains it, or on
// a badge named after it. Resolution tries those in order and remembers the answer.
package thread

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/internal/cache"
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

// BadgeMarker in an album name means its discussion lives on a badge.
const BadgeMarker = "½"

const (
	albumScanSize   = 50
	badgeSearchSize = 50
)

var episodePrefix = regexp.MustCompile(`^#\d+:\s*`)

// CleanName strips a leading "#123: " episode number.
func CleanName(name string) string {
	return strings.TrimSpace(episodePrefix.ReplaceAllString(strings.TrimSpace(name), ""))
}

// Target is a resolved thread.
type Target struct {
	ThreadID string `json:"threadId"`
	// Direct is true when the content is its own thread.
	Direct bool `json:"direct"`
}

// Lookup is the slice of the upstream API resolution needs. *upstream.Client implements it.
type Lookup interface {
	Comments(q upstream.CommentQuery) (*upstream.CommentPage, error)
	Groupings(q upstream.GroupingQuery) (*upstream.GroupingPage, error)
	Content(id string, q upstream.ContentQuery) (*upstream.Content, error)
	Search(q upstream.SearchQuery) (*upstream.SearchResponse, error)
}

// Resolver memoizes successful resolutions in its cache. Failed resolutions are not
// remembered, so a later call may succeed once upstream recovers.
type Resolver struct {
	lookup Lookup
	cache  cache.Cache[string, Target]

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewResolver returns a Resolver. A nil store gets a fresh in-memory cache.
func NewResolver(lookup Lookup, store cache.Cache[string, Target]) *Resolver {
	if store == nil {
		store = cache.NewMemory[string, Target]()
	}

	return &Resolver{
		lookup: lookup,
		cache:  store,
		locks:  make(map[string]*sync.Mutex),
	}
}

var errNotFound = upstream.Errorf(upstream.KindNotFound, "no thread found")

// Resolve returns the thread for contentID. The boolean is false when no thread
// exists or any upstream call failed; callers treat that as "no comments".
func (r *Resolver) Resolve(contentID string) (Target, bool) {
	if t, ok := r.cache.Get(contentID).Get(); ok {
		log.With(log.Fields{"content": contentID, "thread": t.ThreadID}).Debugf("thread cache hit")
		return t, true
	}

	lock := r.lockFor(contentID)
	lock.Lock()
	defer lock.Unlock()

	// another caller may have finished while we waited
	if t, ok := r.cache.Get(contentID).Get(); ok {
		return t, true
	}

	logger := log.With(log.Fields{"content": contentID})

	t, err := r.resolve(contentID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			logger.Infof("no comment thread: %v", err)
		} else {
			logger.Warnf("thread resolution aborted: %v", err)
		}
		return Target{}, false
	}

	if err := r.cache.Set(contentID, t); err != nil {
		logger.Warnf("caching thread: %v", err)
	}

	logger.Infof("resolved thread %s (direct=%t)", t.ThreadID, t.Direct)
	return t, true
}

func (r *Resolver) lockFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

func (r *Resolver) resolve(contentID string) (Target, error) {
	direct, err := r.lookup.Comments(upstream.CommentQuery{RelatedTo: contentID, PageSize: 1, Page: 1})
	if err != nil {
		return Target{}, err
	}
	if len(direct.Comments) > 0 {
		return Target{ThreadID: contentID, Direct: true}, nil
	}

	albums, err := r.lookup.Groupings(upstream.GroupingQuery{
		Community: constant.Community,
		Page:      1,
		PageSize:  albumScanSize,
		Type:      upstream.GroupingAlbum,
	})
	if err != nil {
		return Target{}, err
	}

	album, member, found := findMember(albums.ContentGroupings, contentID)
	if !found {
		return r.viaContentName(contentID)
	}

	if !strings.Contains(album.Name, BadgeMarker) {
		return Target{ThreadID: album.ID}, nil
	}

	term := member.Short
	if term == "" {
		term = album.Name
	}
	return r.viaBadge(CleanName(term))
}

func (r *Resolver) viaContentName(contentID string) (Target, error) {
	content, err := r.lookup.Content(contentID, upstream.ContentQuery{})
	if err != nil {
		return Target{}, err
	}

	name := CleanName(content.DisplayName())
	if name == "" {
		return Target{}, errNotFound
	}
	return r.viaBadge(name)
}

func (r *Resolver) viaBadge(term string) (Target, error) {
	if term == "" {
		return Target{}, errNotFound
	}

	resp, err := r.lookup.Search(upstream.SearchQuery{
		Term:    term,
		Objects: []upstream.SearchObject{upstream.BadgeObject(badgeSearchSize)},
	})
	if err != nil {
		return Target{}, err
	}

	hits := resp.Section(upstream.ObjectBadge)
	if len(hits) == 0 {
		return Target{}, errNotFound
	}
	return Target{ThreadID: hits[0].ID}, nil
}

// findMember returns the first album with a member whose id starts with contentID.
// Upstream sometimes hands out truncated ids, hence the prefix match.
func findMember(albums []*upstream.Grouping, contentID string) (*upstream.Grouping, *upstream.Content, bool) {
	for _, album := range lo.Compact(albums) {
		member, ok := lo.Find(album.ContentList, func(c *upstream.Content) bool {
			return c != nil && c.ID != "" && strings.HasPrefix(c.ID, contentID)
		})
		if ok {
			return album, member, true
		}
	}
	return nil, nil, false
}
