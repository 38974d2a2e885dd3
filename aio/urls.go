package aio

import (
	"net/url"
	"path"
	"strings"

	"github.com/odyssey-club/aiosource/constant"
)

// IsContentURL reports whether u points at a single episode, video or media file.
func IsContentURL(u string) bool {
	return strings.HasPrefix(u, constant.ContentURL) ||
		strings.HasPrefix(u, constant.VideoURL) ||
		(strings.HasPrefix(u, constant.AppURL+"/") && strings.Contains(u, "/contentGroup/") && strings.Contains(u, "/content/")) ||
		strings.HasPrefix(u, constant.MediaURL+"episode")
}

// IsPlaylistURL reports whether u points at a grouping, user playlist, badge or theme.
func IsPlaylistURL(u string) bool {
	return (strings.HasPrefix(u, constant.GroupURL) && !strings.Contains(u, "/content/")) ||
		strings.HasPrefix(u, constant.PlaylistURL) ||
		strings.HasPrefix(u, constant.BadgeURL) ||
		strings.HasPrefix(u, constant.ThemeURL)
}

// IsChannelURL reports whether u names the club channel.
func IsChannelURL(u string) bool {
	return u == constant.PlatformLink
}

// ContentID returns the id a content URL points at. Anything else is taken as an id already.
func ContentID(u string) string {
	u = strings.TrimSpace(u)
	if IsContentURL(u) {
		return parseContentURL(u).ContentID
	}
	return u
}

func isDirectMedia(u string) bool {
	return strings.HasPrefix(u, constant.MediaURL)
}

// contentRef is what a content URL identifies.
type contentRef struct {
	ContentID  string
	GroupingID string
}

// parseContentURL understands /content/<id>, /video?id=<id> and
// /contentGroup/<group>/content/<id>. Anything else yields its last path segment.
func parseContentURL(u string) contentRef {
	if strings.HasPrefix(u, constant.VideoURL) {
		if q, err := url.ParseQuery(strings.TrimPrefix(u, constant.VideoURL)); err == nil && q.Get("id") != "" {
			return contentRef{ContentID: q.Get("id")}
		}
	}

	if strings.Contains(u, "/contentGroup/") && strings.Contains(u, "/content/") {
		parts := strings.Split(stripQuery(u), "/")
		group, content := -1, -1
		for i, p := range parts {
			switch {
			case p == "contentGroup" && group < 0:
				group = i
			case p == "content" && content < 0:
				content = i
			}
		}
		if group >= 0 && content > group && content+1 < len(parts) && group+1 < len(parts) {
			return contentRef{ContentID: parts[content+1], GroupingID: parts[group+1]}
		}
	}

	return contentRef{ContentID: lastSegment(u)}
}

func stripQuery(u string) string {
	u, _, _ = strings.Cut(u, "?")
	u, _, _ = strings.Cut(u, "#")
	return u
}

func lastSegment(u string) string {
	seg := path.Base(strings.TrimRight(stripQuery(u), "/"))
	if seg == "." || seg == "/" {
		return ""
	}
	return seg
}
