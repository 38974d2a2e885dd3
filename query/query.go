// Package query remembers past searches and offers them back as suggestions.
package query

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/odyssey-club/aiosource/key"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

// History is a ranked, file-backed list of past queries.
type History struct {
	cacher *gache.Cache[map[string]*record]

	mu   sync.Mutex
	memo map[string][]*record
}

// NewHistory opens the history stored at path.
func NewHistory(path string) *History {
	return &History{
		cacher: gache.New[map[string]*record](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		memo: make(map[string][]*record),
	}
}

// Remember records q, raising its rank by weight if it was seen before.
func (h *History) Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	cached, expired, err := h.cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[q]; ok {
		r.Rank += weight
	} else {
		cached[q] = &record{Rank: weight, Query: q}
	}

	clear(h.memo)
	return h.cacher.Set(cached)
}

// Suggest returns past queries fuzzily matching q, most used first.
// Nothing is suggested when search.show_query_suggestions is off.
func (h *History) Suggest(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	h.mu.Lock()
	defer h.mu.Unlock()

	records, ok := h.memo[q]
	if !ok {
		cached, expired, err := h.cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		records = lo.Filter(lo.Values(cached), func(r *record, _ int) bool {
			return fuzzy.Match(q, r.Query)
		})
		slices.SortFunc(records, func(a, b *record) int {
			if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
				return c
			}
			return cmp.Compare(a.Query, b.Query)
		})

		h.memo[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

// Best returns the top suggestion for q.
func (h *History) Best(q string) mo.Option[string] {
	suggestions := h.Suggest(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
