package source

// CommentContext carries what is needed to continue a thread or fetch replies.
type CommentContext struct {
	ContentID string `json:"contentId"`
	CommentID string `json:"commentId"`
	ParentID  string `json:"parentId,omitempty"`
	ThreadID  string `json:"threadId"`

	// Direct is true when the thread is anchored on the content itself rather
	// than on its album or badge.
	Direct bool `json:"direct"`
}

// CommentItem is a comment or a reply.
type CommentItem struct {
	ContextURL string         `json:"contextUrl"`
	Author     Author         `json:"author"`
	Message    string         `json:"message"`
	Likes      int            `json:"likes"`
	Date       int64          `json:"date"`
	ReplyCount int            `json:"replyCount"`
	Context    CommentContext `json:"context"`
	Replies    []*CommentItem `json:"replies,omitempty"`
}

// ID is the upstream comment id.
func (c *CommentItem) ID() string {
	return c.Context.CommentID
}
