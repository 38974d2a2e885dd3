// Package pager turns page-at-a-time listings into resumable sequences.
//
// Every listing kind registers one fetch function with an Engine. A Page carries the
// token that produced it and the token for the page after it, so callers continue a
// listing with Engine.Next without keeping any other state.
package pager

import (
	"fmt"
	"slices"
	"sync"

	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/source"
)

// DefaultReplyWindow is how many embedded replies one reply page holds.
const DefaultReplyWindow = 60

// Result is what a fetch function returns for one page.
type Result struct {
	Contents  []*source.ContentItem
	Playlists []*source.PlaylistItem
	Comments  []*source.CommentItem
	// TotalPages from upstream metadata. Zero or less means a single page.
	TotalPages int
}

// FetchFunc fetches the page tok points at.
type FetchFunc func(tok Token) (*Result, error)

// Page is one page of a listing. Only the slice matching Kind is populated.
type Page struct {
	Kind      Kind                   `json:"kind"`
	Token     Token                  `json:"token"`
	Contents  []*source.ContentItem  `json:"contents,omitempty"`
	Playlists []*source.PlaylistItem `json:"playlists,omitempty"`
	Comments  []*source.CommentItem  `json:"comments,omitempty"`
	HasMore   bool                   `json:"hasMore"`
	Next      Token                  `json:"next"`

	// replies already delivered with their parent comment
	pool []*source.CommentItem
}

// Len returns the number of items on the page.
func (p *Page) Len() int {
	return len(p.Contents) + len(p.Playlists) + len(p.Comments)
}

// Empty is a valid page with nothing on it and nothing after it.
func Empty(tok Token) *Page {
	tok = tok.normalized()
	return &Page{Kind: tok.Kind, Token: tok, Next: tok.Advance()}
}

// Engine dispatches fetches on the token kind.
type Engine struct {
	ReplyWindow int

	mu       sync.RWMutex
	fetchers map[Kind]FetchFunc
}

func New() *Engine {
	return &Engine{
		ReplyWindow: DefaultReplyWindow,
		fetchers:    make(map[Kind]FetchFunc),
	}
}

// Register sets the fetch function for kind, replacing any previous one.
func (e *Engine) Register(kind Kind, fn FetchFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fetchers[kind] = fn
}

// Fetch returns the page tok points at.
func (e *Engine) Fetch(tok Token) (*Page, error) {
	tok = tok.normalized()
	if tok.Kind == ReplyPage {
		return nil, fmt.Errorf("reply pages cannot be fetched, only continued")
	}

	e.mu.RLock()
	fn, ok := e.fetchers[tok.Kind]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no fetcher registered for %q pages", tok.Kind)
	}

	res, err := fn(tok)
	if err != nil {
		return nil, err
	}

	total := max(res.TotalPages, 1)
	log.With(log.Fields{"kind": tok.Kind, "page": tok.Page, "total": total}).Debugf("fetched page")

	return &Page{
		Kind:      tok.Kind,
		Token:     tok,
		Contents:  res.Contents,
		Playlists: res.Playlists,
		Comments:  res.Comments,
		HasMore:   tok.Page < total,
		Next:      tok.Advance(),
	}, nil
}

// Next continues the listing p belongs to. An exhausted listing yields an empty page.
func (e *Engine) Next(p *Page) (*Page, error) {
	if p == nil {
		return nil, fmt.Errorf("nil page")
	}
	if !p.HasMore {
		return Empty(p.Next), nil
	}
	if p.Kind == ReplyPage {
		return e.window(p.pool, p.Next), nil
	}
	return e.Fetch(p.Next)
}

// Replies pages through replies already held in memory.
func (e *Engine) Replies(parent *source.CommentItem) *Page {
	tok := First(ReplyPage)
	if parent != nil {
		tok.ContentID = parent.Context.ContentID
		tok.ThreadID = parent.Context.ThreadID
		return e.window(parent.Replies, tok)
	}
	return e.window(nil, tok)
}

func (e *Engine) window(pool []*source.CommentItem, tok Token) *Page {
	size := e.ReplyWindow
	if size <= 0 {
		size = DefaultReplyWindow
	}

	tok = tok.normalized()
	start := min((tok.Page-1)*size, len(pool))
	end := min(start+size, len(pool))

	return &Page{
		Kind:     ReplyPage,
		Token:    tok,
		Comments: pool[start:end],
		HasMore:  end < len(pool),
		Next:     tok.Advance(),
		pool:     pool,
	}
}

// NewestFirst reverses items when they arrive oldest first. The input is not modified.
func NewestFirst(items []*source.ContentItem) []*source.ContentItem {
	if len(items) < 2 {
		return items
	}
	if items[0].UploadDate >= items[len(items)-1].UploadDate {
		return items
	}

	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

// Static wraps items that are complete in a single page.
func Static(tok Token, contents []*source.ContentItem) *Page {
	tok = tok.normalized()
	return &Page{Kind: tok.Kind, Token: tok, Contents: contents, Next: tok.Advance()}
}
