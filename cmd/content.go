package cmd

import (
	"fmt"

	"github.com/odyssey-club/aiosource/aio"
	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/icon"
	"github.com/odyssey-club/aiosource/inline"
	"github.com/odyssey-club/aiosource/open"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(contentCmd)

	contentCmd.Flags().BoolP("open", "o", false, "Open the media with the default handler")
	contentCmd.Flags().String("with", "", "Open the media with this application instead")
	contentCmd.Flags().BoolP("recommendations", "r", false, "List what plays next instead of the item itself")
	contentCmd.Flags().StringP("select", "s", "", "Select recommendations: first, last, all, N, A-B or @text@")
}

var contentCmd = &cobra.Command{
	Use:     "content [url]",
	Aliases: []string{"episode"},
	Short:   "Show an episode with its playable media",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			src = newSource()
			url = args[0]
		)

		if !aio.IsContentURL(url) {
			handleErr(fmt.Errorf("not a content url: %s", url))
		}

		if lo.Must(cmd.Flags().GetBool("recommendations")) {
			page := src.Recommendations(url)

			filter, err := inline.OptionalFilter(lo.Must(cmd.Flags().GetString("select")), func(c *source.ContentItem) string {
				return c.Name
			})
			handleErr(err)
			if f, ok := filter.Get(); ok {
				page.Contents = f(page.Contents)
			}

			emit(cmd, &inline.Output{Operation: "recommendations", Page: page}, false)
			return
		}

		item, err := src.GetContentDetails(url)
		if aio.IsAuthRequired(err) {
			handleErr(fmt.Errorf("%s %w, run %s first", icon.Get(icon.Lock), err, style.Fg(color.Yellow)("aiosource auth login")))
		}
		handleErr(err)

		emit(cmd, &inline.Output{Operation: "content", Content: item}, false)

		if lo.Must(cmd.Flags().GetBool("open")) || cmd.Flags().Changed("with") {
			target := item.URL
			if item.Playable() {
				target = item.Media.URL
			}
			handleErr(open.StartWith(target, lo.Must(cmd.Flags().GetString("with"))))
		}
	},
}
