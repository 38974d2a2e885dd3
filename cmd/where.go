package cmd

import (
	"encoding/json"
	"os"

	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/style"
	"github.com/odyssey-club/aiosource/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a path the tool writes to. Internal ones are only printed on request.
type location struct {
	flag     string
	short    string
	title    string
	path     func() string
	internal bool
}

var locations = []location{
	{flag: "config", short: "c", title: "Config", path: where.Config},
	{flag: "cache", short: "C", title: "Cache", path: where.Cache},
	{flag: "logs", short: "l", title: "Logs", path: where.Logs},
	{flag: "threads", title: "Comment threads", path: where.Threads, internal: true},
	{flag: "episodes", title: "Episode numbers", path: where.Episodes, internal: true},
	{flag: "queries", title: "Search history", path: where.Queries, internal: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)

	flags := whereCmd.Flags()
	for _, l := range locations {
		flags.BoolP(l.flag, l.short, false, "Print only the "+l.title+" path")
		if l.internal {
			lo.Must0(flags.MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration, caches and logs are stored",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		if asJson, _ := cmd.Flags().GetBool("json"); asJson {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag, l.path()
			})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		flag := style.Fg(color.Yellow)

		visible := lo.Reject(locations, func(l location, _ int) bool { return l.internal })
		for i, l := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n%s\n", header(l.title), flag("--"+l.flag), l.path())
		}
	},
}
