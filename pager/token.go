package pager

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Kind tags a page with the listing it belongs to.
type Kind string

const (
	ContentPage  Kind = "content"
	PlaylistPage Kind = "playlist"
	CommentPage  Kind = "comment"
	ReplyPage    Kind = "reply"
)

// Token carries everything needed to repeat a listing request, so continuing
// never depends on server-side state.
type Token struct {
	Kind Kind `json:"kind"`
	// Page is 1-based. Zero means the first page.
	Page      int               `json:"page"`
	URL       string            `json:"url,omitempty"`
	Query     string            `json:"query,omitempty"`
	Category  string            `json:"category,omitempty"`
	Order     string            `json:"order,omitempty"`
	Filters   map[string]string `json:"filters,omitempty"`
	ContentID string            `json:"contentId,omitempty"`
	ThreadID  string            `json:"threadId,omitempty"`
}

// First returns the first-page token of kind.
func First(kind Kind) Token {
	return Token{Kind: kind, Page: 1}
}

func (t Token) normalized() Token {
	if t.Page < 1 {
		t.Page = 1
	}
	return t
}

// Advance returns a copy of t pointing at the following page.
func (t Token) Advance() Token {
	next := t.normalized()
	next.Page++
	if t.Filters != nil {
		next.Filters = make(map[string]string, len(t.Filters))
		for k, v := range t.Filters {
			next.Filters[k] = v
		}
	}
	return next
}

// Filter returns a filter value or "".
func (t Token) Filter(name string) string {
	return t.Filters[name]
}

// Encode serializes t into an opaque URL-safe string.
func (t Token) Encode() (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a string produced by Encode.
func Decode(s string) (Token, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Token{}, fmt.Errorf("decode token: %w", err)
	}

	var t Token
	if err := json.Unmarshal(data, &t); err != nil {
		return Token{}, fmt.Errorf("decode token: %w", err)
	}
	if t.Kind == "" {
		return Token{}, fmt.Errorf("decode token: missing kind")
	}
	return t.normalized(), nil
}
