// Package inline renders command results for scripts and terminals.
//
// Results are either a single JSON document or a compact styled listing.
package inline

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/icon"
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/style"
	"github.com/odyssey-club/aiosource/util"
)

const defaultWidth = 80

// Write renders o as JSON or text depending on options.
func Write(o *Output, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if o.Page != nil && o.Page.HasMore && o.Next == "" {
		next, err := o.Page.Next.Encode()
		if err != nil {
			return err
		}
		o.Next = next
	}

	if options.Json {
		return writeJson(options.Out, o)
	}

	r := &renderer{out: options.Out, width: width(options), replies: options.Replies}
	return r.output(o)
}

func width(options *Options) int {
	if options.Width > 0 {
		return options.Width
	}

	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

type renderer struct {
	out     io.Writer
	width   int
	replies bool
	err     error
}

func (r *renderer) println(a ...any) {
	if r.err == nil {
		_, r.err = fmt.Fprintln(r.out, a...)
	}
}

func (r *renderer) wrap(text string, depth uint) {
	if text == "" {
		return
	}
	wrapped := wordwrap.String(text, util.Max(r.width-int(depth), 20))
	r.println(indent.String(wrapped, depth))
}

func (r *renderer) output(o *Output) error {
	if o.Channel != nil {
		r.channel(o.Channel)
	}
	if o.Content != nil {
		r.content(o.Content, true)
	}
	if o.Playlist != nil {
		r.playlist(o.Playlist, true)
	}
	for _, s := range o.Suggestions {
		r.println(s)
	}
	if o.Page != nil {
		r.page(o.Page)
	}
	if o.Next != "" {
		r.println()
		r.println(style.Faint("next: " + o.Next))
	}
	return r.err
}

func (r *renderer) channel(c *source.Channel) {
	r.println(style.Title(c.Name))
	r.println(style.Faint(c.URL))
	r.wrap(c.Description, 0)
}

func (r *renderer) page(p *pager.Page) {
	if p.Len() == 0 {
		r.println(style.Faint(icon.Get(icon.Empty) + " nothing here"))
		return
	}

	for _, c := range p.Contents {
		r.content(c, false)
	}
	for _, pl := range p.Playlists {
		r.playlist(pl, false)
	}
	for _, c := range p.Comments {
		r.comment(c, 0)
	}
}

func (r *renderer) content(c *source.ContentItem, detailed bool) {
	var meta []string
	if c.Kind != "" {
		meta = append(meta, string(c.Kind))
	}
	if c.Duration > 0 {
		meta = append(meta, (time.Duration(c.Duration) * time.Second).String())
	}
	if c.UploadDate > 0 {
		meta = append(meta, c.Uploaded().UTC().Format(time.DateOnly))
	}
	if c.Views > 0 {
		meta = append(meta, util.Quantify(int(c.Views), "view", "views"))
	}

	r.println(icon.Get(icon.Content), style.Bold(c.Name), style.Faint(strings.Join(meta, " · ")))
	r.println("  " + style.Fg(color.Cyan)(c.URL))

	if !detailed {
		return
	}
	if c.Media != nil {
		r.println("  " + style.Fg(color.Green)(c.Media.URL))
	}
	r.println()
	r.wrap(c.Description, 2)
}

func (r *renderer) playlist(p *source.PlaylistItem, detailed bool) {
	r.println(icon.Get(icon.Playlist), style.Bold(p.Name), style.Faint(util.Quantify(p.ItemCount, "item", "items")))
	r.println("  " + style.Fg(color.Cyan)(p.URL))

	if !detailed {
		return
	}
	r.wrap(p.Description, 2)
	for i, c := range p.Contents {
		r.println(fmt.Sprintf("  %s %s", style.Faint(fmt.Sprintf("%3d", i)), c.Name))
	}
}

func (r *renderer) comment(c *source.CommentItem, depth uint) {
	header := style.Fg(color.Purple)(c.Author.Name)
	if c.Date > 0 {
		header += " " + style.Faint(time.Unix(c.Date, 0).UTC().Format(time.DateOnly))
	}
	if c.Likes > 0 {
		header += " " + style.Faint(fmt.Sprintf("%s %d", icon.Get(icon.Like), c.Likes))
	}
	if c.ReplyCount > 0 {
		header += " " + style.Faint(util.Quantify(c.ReplyCount, "reply", "replies"))
	}

	r.println(indent.String(header, depth))
	r.wrap(c.Message, depth+2)

	if r.replies {
		for _, reply := range c.Replies {
			r.comment(reply, depth+4)
		}
	}
}
