package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/odyssey-club/aiosource/aio"
	"github.com/odyssey-club/aiosource/icon"
	"github.com/odyssey-club/aiosource/internal/cache"
	"github.com/odyssey-club/aiosource/thread"
	"github.com/odyssey-club/aiosource/util"
	"github.com/odyssey-club/aiosource/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"comment threads", "threads", mo.Some("t"), where.Threads},
	{"random episode pool", "episodes", mo.Some("e"), where.Episodes},
	{"queries history", "queries", mo.Some("q"), where.Queries},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().String("forget", "", "forget the cached comment thread of one content URL or id")
}

// forgetThread drops one entry from the persisted thread cache and returns its key.
func forgetThread(path, contentURL string) (string, error) {
	id := aio.ContentID(contentURL)
	if id == "" {
		return "", fmt.Errorf("no content id in %q", contentURL)
	}
	return id, cache.NewPersistent[string, thread.Target](path, 0).Delete(id)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached threads, episode pools and query history",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		if u := lo.Must(cmd.Flags().GetString("forget")); u != "" {
			anyCleared = true
			id, err := forgetThread(where.Threads(), u)
			handleErr(err)
			fmt.Printf("%s Comment thread of %s forgotten\n", icon.Get(icon.Success), id)
		}

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			erase()

			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
