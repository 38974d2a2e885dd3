package normalize

import (
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

func (n *Normalizer) commentAuthor(rec *upstream.Comment, contextURL string) source.Author {
	return source.Author{
		ID:        source.NewID(rec.ViewerProfileID),
		Name:      rec.UserName,
		URL:       contextURL,
		Thumbnail: rec.ProfilePicture,
	}
}

// Comment projects a top-level comment and its embedded replies. ctx supplies the
// content and thread the comment was fetched for.
func (n *Normalizer) Comment(rec *upstream.Comment, contextURL string, ctx source.CommentContext) *source.CommentItem {
	ctx.CommentID = rec.ID
	ctx.ParentID = ""

	replies := lo.FilterMap(rec.Comments, func(r *upstream.Comment, _ int) (*source.CommentItem, bool) {
		if r == nil {
			return nil, false
		}

		replyCtx := ctx
		replyCtx.CommentID = r.ID
		replyCtx.ParentID = rec.ID

		return &source.CommentItem{
			ContextURL: contextURL,
			Author:     n.commentAuthor(r, contextURL),
			Message:    r.Message,
			Likes:      max(r.Likes.Int(), 0),
			Date:       n.UploadDate(r.Created.String()),
			Context:    replyCtx,
		}, true
	})

	return &source.CommentItem{
		ContextURL: contextURL,
		Author:     n.commentAuthor(rec, contextURL),
		Message:    rec.Message,
		Likes:      max(rec.Likes.Int(), 0),
		Date:       n.UploadDate(rec.Created.String()),
		ReplyCount: max(rec.Replies.Int(), 0),
		Context:    ctx,
		Replies:    replies,
	}
}
