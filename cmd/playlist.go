package cmd

import (
	"fmt"

	"github.com/odyssey-club/aiosource/aio"
	"github.com/odyssey-club/aiosource/inline"
	"github.com/odyssey-club/aiosource/source"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playlistCmd)
	playlistCmd.Flags().StringP("select", "s", "", "Select episodes: first, last, all, N, A-B or @text@")
}

var playlistCmd = &cobra.Command{
	Use:     "playlist [url]",
	Aliases: []string{"album", "badge", "theme"},
	Short:   "Show an album, badge, theme or playlist with its episodes",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		if !aio.IsPlaylistURL(url) {
			handleErr(fmt.Errorf("not a playlist url: %s", url))
		}

		playlist, err := newSource().GetPlaylist(url)
		handleErr(err)

		filter, err := inline.OptionalFilter(lo.Must(cmd.Flags().GetString("select")), func(c *source.ContentItem) string {
			return c.Name
		})
		handleErr(err)
		if f, ok := filter.Get(); ok {
			playlist.Contents = f(playlist.Contents)
		}

		emit(cmd, &inline.Output{Operation: "playlist", Playlist: playlist}, false)
	},
}
