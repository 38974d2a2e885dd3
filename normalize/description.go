package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/samber/lo"
)

var imageTag = regexp.MustCompile(`(?i)<img[^>]*src=["']([^"']+)["'][^>]*>`)

const blockSeparator = "\n\n"

// Description composes the long description of a content record. Blocks appear in a
// fixed order and absent blocks are left out.
func (n *Normalizer) Description(rec *upstream.Content) string {
	blocks := []string{
		strings.TrimSpace(rec.Description),
		imageTag.ReplaceAllString(strings.TrimSpace(rec.Body), `<a href="$1" target="_blank" rel="noopener noreferrer">[Image]</a>`),
		airDateLine(rec.AirDate),
		authorsBlock(rec.Authors),
		charactersBlock(rec.Characters),
		n.themesBlock(rec.Tags),
		labeled("Bible Verse", rec.BibleVerse),
		labeled("Devotional", rec.Devotional),
	}

	if n.Debug {
		blocks = append(blocks, debugBlocks(rec)...)
	}

	return strings.Join(lo.Compact(blocks), blockSeparator)
}

func labeled(label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func link(href, text string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, href, text)
}

func airDateLine(raw string) string {
	date, _, _ := strings.Cut(strings.TrimSpace(raw), "T")
	if date == "" {
		return ""
	}
	return "Air Date: " + strings.ReplaceAll(date, "-", "/")
}

func authorsBlock(authors []*upstream.Author) string {
	lines := lo.FilterMap(authors, func(a *upstream.Author, _ int) (string, bool) {
		if a == nil {
			return "", false
		}
		if a.ID != "" {
			return a.Role + ": " + link(constant.CastURL+a.ID, a.Name), true
		}
		return a.Role + ": " + a.Name, true
	})
	return strings.Join(lines, "\n")
}

func charactersBlock(characters []*upstream.Character) string {
	links := lo.FilterMap(characters, func(c *upstream.Character, _ int) (string, bool) {
		if c == nil {
			return "", false
		}
		return link(constant.CharactersURL+c.ID, lo.CoalesceOrEmpty(c.Nickname, c.Name)), true
	})
	if len(links) == 0 {
		return ""
	}
	return "Characters: " + strings.Join(links, ", ")
}

func (n *Normalizer) themesBlock(tags []*upstream.Tag) string {
	names := lo.FilterMap(tags, func(t *upstream.Tag, _ int) (string, bool) {
		if t == nil {
			return "", false
		}
		if n.Caps.Themes && t.TopicID != "" {
			return link(constant.ThemeURL+t.TopicID, t.Name), true
		}
		return t.Name, true
	})
	if len(names) == 0 {
		return ""
	}
	return "Themes: " + strings.Join(names, ", ")
}

func debugBlocks(rec *upstream.Content) []string {
	number := func(v upstream.Number) string {
		if v == 0 {
			return ""
		}
		return fmt.Sprint(float64(v))
	}

	return []string{
		labeled("ID", rec.ID),
		labeled("Relative Air Day", rec.RelativeAirDay),
		labeled("Recent Air Date", rec.RecentAirDate),
		labeled("Album Name", rec.AlbumName),
		labeled("Bookmarks", number(rec.Bookmarks)),
		labeled("Rating Count", number(rec.RatingCount)),
		labeled("Rating Average", number(rec.RatingAverage)),
		labeled("Media Format", rec.MediaFormat),
		labeled("Download URL", rec.DownloadURL),
		labeled("Signed Cookie", rec.SignedCookie),
	}
}
