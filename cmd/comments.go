package cmd

import (
	"github.com/odyssey-club/aiosource/aio"
	"github.com/odyssey-club/aiosource/inline"
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/source"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commentsCmd)
	addPagingFlags(commentsCmd)
	commentsCmd.Flags().BoolP("replies", "r", false, "Show replies under each comment")
}

var commentsCmd = &cobra.Command{
	Use:   "comments [url]",
	Short: "List the comments of an episode. Requires a session",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			src = newSource()
			tok = pageToken(cmd)
			url string
		)

		if len(args) > 0 {
			url = args[0]
		}
		if url == "" && tok == nil {
			handleErr(cmd.Help())
			return
		}

		if ok, _ := session.IsAuthenticated(); !ok {
			log.Info("comments requested without a session")
		}

		page := collect(cmd, src, src.GetComments(url, tok))

		replies := lo.Must(cmd.Flags().GetBool("replies"))
		if replies {
			for _, c := range page.Comments {
				c.Replies = allReplies(src, c)
			}
		}

		emit(cmd, &inline.Output{Operation: "comments", Page: page}, replies)
	},
}

// allReplies walks every reply page of c.
func allReplies(src aio.Provider, c *source.CommentItem) []*source.CommentItem {
	var out []*source.CommentItem
	for page := src.Replies(c); ; page = src.Next(page) {
		out = append(out, page.Comments...)
		if !page.HasMore {
			return out
		}
	}
}
