package normalize

import (
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
)

// Media resolves the playable source of a detail record.
func (n *Normalizer) Media(rec *upstream.Content) (*source.MediaSource, error) {
	if rec.DownloadURL == "" {
		return nil, upstream.Errorf(upstream.KindUpstreamUnavailable, "no media URL found")
	}

	if rec.Type == upstream.TypeVideo {
		url := rec.DownloadURL
		if len(rec.StreamURL) > len(url) {
			url = rec.StreamURL
		}

		return &source.MediaSource{
			Kind:     source.KindVideo,
			Name:     rec.Short,
			URL:      url,
			Duration: Seconds(rec.MediaLength),
			Headers:  MediaHeaders(source.KindVideo),
		}, nil
	}

	return &source.MediaSource{
		Kind:     source.KindAudio,
		Name:     rec.Short,
		URL:      rec.DownloadURL,
		Duration: Seconds(rec.MediaLength),
		Headers:  MediaHeaders(source.KindAudio),
	}, nil
}

// MediaHeaders are the request headers the media CDN expects.
func MediaHeaders(kind source.Kind) map[string]string {
	return map[string]string{
		"Sec-Fetch-Dest": string(kind),
		"range":          "-",
	}
}

// Details projects a detail record with its description. Media is resolved separately
// because it depends on the access decision.
func (n *Normalizer) Details(rec *upstream.Content, url string) *source.ContentItem {
	item := n.Content(rec)
	if url != "" {
		item.URL = url
	}
	item.Description = n.Description(rec)
	return item
}
