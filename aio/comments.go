package aio

import (
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

// GetComments lists the comments of the content at url. Comments need a session;
// anonymous viewers and content without a thread get an empty page.
func (s *Source) GetComments(url string, tok *pager.Token) *pager.Page {
	t := pager.First(pager.CommentPage)
	if tok != nil {
		t = *tok
		t.Kind = pager.CommentPage
	}
	if t.URL == "" {
		t.URL = url
	}
	if t.ContentID == "" {
		t.ContentID = parseContentURL(t.URL).ContentID
	}

	if !s.authenticated() {
		log.With(log.Fields{"content": t.ContentID}).Debugf("comments need a session")
		return pager.Empty(t)
	}

	return s.fetch(t)
}

// Replies pages through the replies embedded in comment.
func (s *Source) Replies(comment *source.CommentItem) *pager.Page {
	return s.engine.Replies(comment)
}

func (s *Source) fetchComments(tok pager.Token) (*pager.Result, error) {
	if tok.ContentID == "" {
		return nil, upstream.Errorf(upstream.KindNotFound, "no content id in %q", tok.URL)
	}

	target, ok := s.resolver.Resolve(tok.ContentID)
	if !ok {
		return &pager.Result{}, nil
	}

	page, err := s.client.Comments(upstream.CommentQuery{
		RelatedTo: target.ThreadID,
		PageSize:  s.settings.CommentPageSize(),
		Page:      tok.Page,
	})
	if err != nil {
		return nil, err
	}

	ctx := source.CommentContext{ContentID: tok.ContentID, ThreadID: target.ThreadID, Direct: target.Direct}
	return &pager.Result{
		Comments: lo.FilterMap(page.Comments, func(c *upstream.Comment, _ int) (*source.CommentItem, bool) {
			if c == nil {
				return nil, false
			}
			return s.norm.Comment(c, tok.URL, ctx), true
		}),
		TotalPages: page.Metadata.TotalPageCount.Int(),
	}, nil
}
