package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/odyssey-club/aiosource/aio"
	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/odyssey-club/aiosource/inline"
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as a JSON object")
	rootCmd.PersistentFlags().String("output", "", "Write the command output to a file")
	rootCmd.PersistentFlags().Int("width", 0, "Wrap text output at this width. Defaults to the terminal width")
}

// addPagingFlags registers the flags shared by every listing command.
func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("token", "t", "", "Continue a listing from the token printed after a previous page")
	cmd.Flags().IntP("pages", "p", 1, "Number of pages to fetch")
}

func pageToken(cmd *cobra.Command) *pager.Token {
	raw := lo.Must(cmd.Flags().GetString("token"))
	if raw == "" {
		return nil
	}

	tok, err := pager.Decode(raw)
	handleErr(err)
	return &tok
}

// collect follows page for up to the --pages flag, merging the results.
func collect(cmd *cobra.Command, src aio.Provider, page *pager.Page) *pager.Page {
	pages := lo.Must(cmd.Flags().GetInt("pages"))

	merged := *page
	for i := 1; i < pages && page.HasMore; i++ {
		page = src.Next(page)
		merged.Contents = append(merged.Contents, page.Contents...)
		merged.Playlists = append(merged.Playlists, page.Playlists...)
		merged.Comments = append(merged.Comments, page.Comments...)
		merged.HasMore, merged.Next = page.HasMore, page.Next
	}

	return &merged
}

func emit(cmd *cobra.Command, out *inline.Output, replies bool) {
	var (
		writer io.Writer = os.Stdout
		path             = lo.Must(cmd.Flags().GetString("output"))
	)

	if path != "" {
		file, err := filesystem.API().Create(path)
		handleErr(err)
		defer file.Close()
		writer = file
	}

	handleErr(inline.Write(out, &inline.Options{
		Out:     writer,
		Json:    lo.Must(cmd.Flags().GetBool("json")),
		Width:   lo.Must(cmd.Flags().GetInt("width")),
		Replies: replies,
	}))
}

// continued is a placeholder page whose successor is tok.
func continued(tok *pager.Token) *pager.Page {
	return &pager.Page{Kind: tok.Kind, HasMore: true, Next: *tok}
}

func errUnknownCategory(category string) error {
	return fmt.Errorf("unknown category %s, expected one of %s",
		style.Fg(color.Red)(category),
		style.Fg(color.Yellow)(strings.Join(searchCategories, ", ")),
	)
}
