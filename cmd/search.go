package cmd

import (
	"strings"

	"github.com/odyssey-club/aiosource/aio"
	"github.com/odyssey-club/aiosource/inline"
	"github.com/odyssey-club/aiosource/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var searchCategories = []string{aio.CategoryVideos, aio.CategoryPlaylists, aio.CategoryBadges}

func init() {
	rootCmd.AddCommand(searchCmd)
	addPagingFlags(searchCmd)

	searchCmd.Flags().StringP("category", "c", "", "Restrict results to one category: "+strings.Join(searchCategories, ", "))
	searchCmd.Flags().BoolP("suggest", "s", false, "Print query suggestions instead of searching")

	lo.Must0(searchCmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return searchCategories, cobra.ShellCompDirectiveNoFileComp
	}))
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search episodes, albums and badges",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return history().Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			src      = newSource()
			category = lo.Must(cmd.Flags().GetString("category"))
			q        string
		)

		if len(args) > 0 {
			q = args[0]
		}

		if category != "" && !lo.Contains(searchCategories, category) {
			handleErr(errUnknownCategory(category))
		}

		if lo.Must(cmd.Flags().GetBool("suggest")) {
			emit(cmd, &inline.Output{Operation: "suggestions", Query: q, Suggestions: src.SearchSuggestions(q)}, false)
			return
		}

		if tok := pageToken(cmd); tok != nil {
			page := src.Next(continued(tok))
			emit(cmd, &inline.Output{Operation: "search", Query: tok.Query, Page: collect(cmd, src, page)}, false)
			return
		}

		if q == "" {
			handleErr(cmd.Help())
			return
		}

		if err := history().Remember(q, 1); err != nil {
			log.Warnf("remember query: %v", err)
		}

		page := src.Search(q, category)
		emit(cmd, &inline.Output{Operation: "search", Query: q, Page: collect(cmd, src, page)}, false)
	},
}
