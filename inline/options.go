package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/odyssey-club/aiosource/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Filter narrows a list of rendered items.
type Filter[T any] func([]T) []T

type Options struct {
	Out  io.Writer
	Json bool

	// Width wraps descriptions and comments. Zero means the terminal width.
	Width int

	// Replies nests replies under their comment in text output.
	Replies bool
}

// ParseFilter parses a selector into a filter over items named by name.
//
//	first, last, all
//	N        item at index N
//	A-B      items A through B inclusive
//	@text@   items whose name contains text
func ParseFilter[T any](description string, name func(T) string) (Filter[T], error) {
	switch description {
	case "", "all":
		return func(items []T) []T { return items }, nil
	case "first":
		return func(items []T) []T {
			return items[:util.Min(1, len(items))]
		}, nil
	case "last":
		return func(items []T) []T {
			return items[util.Max(0, len(items)-1):]
		}, nil
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(items []T) []T {
			return lo.Filter(items, func(item T, _ int) bool {
				return strings.Contains(strings.ToLower(name(item)), sub)
			})
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		a, err1 := strconv.ParseUint(from, 10, 16)
		b, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(items []T) []T {
				start := util.Min(int(a), len(items))
				end := util.Min(int(b)+1, len(items))
				if start > end {
					return []T{}
				}
				return items[start:end]
			}, nil
		}
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(items []T) []T {
			if uint64(len(items)) <= idx {
				return []T{}
			}
			return items[idx : idx+1]
		}, nil
	}

	return nil, fmt.Errorf("invalid selector: %s", description)
}

// OptionalFilter is ParseFilter for an optional flag.
func OptionalFilter[T any](description string, name func(T) string) (mo.Option[Filter[T]], error) {
	if description == "" {
		return mo.None[Filter[T]](), nil
	}

	f, err := ParseFilter(description, name)
	if err != nil {
		return mo.None[Filter[T]](), err
	}
	return mo.Some(f), nil
}
