package cmd

import (
	"github.com/odyssey-club/aiosource/inline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(channelCmd)
	channelCmd.AddCommand(channelContentsCmd, channelPlaylistsCmd)

	addPagingFlags(channelContentsCmd)
	addPagingFlags(channelPlaylistsCmd)
}

var channelCmd = &cobra.Command{
	Use:   "channel [url]",
	Short: "Describe the club channel",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var url string
		if len(args) > 0 {
			url = args[0]
		}

		emit(cmd, &inline.Output{Operation: "channel", Channel: newSource().GetChannel(url)}, false)
	},
}

var channelContentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "List the newest episodes. Anonymous viewers get the free ones",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		src := newSource()
		page := src.GetChannelContents(pageToken(cmd))
		emit(cmd, &inline.Output{Operation: "channel.contents", Page: collect(cmd, src, page)}, false)
	},
}

var channelPlaylistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List albums, or the grouping type set by channel.grouping_type_index",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		src := newSource()
		page := src.GetChannelPlaylists(pageToken(cmd))
		emit(cmd, &inline.Output{Operation: "channel.playlists", Page: collect(cmd, src, page)}, false)
	},
}
