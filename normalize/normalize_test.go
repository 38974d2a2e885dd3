package normalize

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/source"
	"github.com/odyssey-club/aiosource/upstream"
	. "github.com/smartystreets/goconvey/convey"
)

func record(t *testing.T, raw string) *upstream.Content {
	var c upstream.Content
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatal(err)
	}
	return &c
}

func fixed() *Normalizer {
	n := New(AllCapabilities(), false)
	n.Now = func() time.Time { return time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC) }
	return n
}

func TestConversions(t *testing.T) {
	Convey("Seconds rounds milliseconds down", t, func() {
		So(Seconds(1500), ShouldEqual, int64(1))
		So(Seconds(1_380_999), ShouldEqual, int64(1380))
		So(Seconds(0), ShouldEqual, int64(0))
		So(Seconds(-5), ShouldEqual, int64(0))
	})

	Convey("RuntimeCount estimates episodes of 23 minutes", t, func() {
		So(RuntimeCount(23*60*1000*4), ShouldEqual, 4)
		So(RuntimeCount(23*60*1000*1.6), ShouldEqual, 2)
		So(RuntimeCount(0), ShouldEqual, 0)
	})

	Convey("Name falls back to Untitled", t, func() {
		So(Name("", "  ", "b"), ShouldEqual, "b")
		So(Name("a", "b"), ShouldEqual, "a")
		So(Name(), ShouldEqual, Untitled)
	})

	Convey("UploadDate takes the first parseable candidate", t, func() {
		n := fixed()
		So(n.UploadDate("", "garbage", "2024-01-02"), ShouldEqual, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Unix())
		So(n.UploadDate("1970-01-01T00:00:00Z", "2024-01-02T00:00:00Z"), ShouldEqual, int64(1704153600))
		So(n.UploadDate("", "nope"), ShouldEqual, int64(0))
	})

	Convey("YearStart", t, func() {
		n := fixed()
		So(n.YearStart("1994"), ShouldEqual, time.Date(1994, 1, 1, 0, 0, 0, 0, time.UTC).Unix())
		So(n.YearStart(""), ShouldEqual, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix())
	})
}

func TestContent(t *testing.T) {
	Convey("Given a content record", t, func() {
		n := fixed()
		rec := record(t, `{
			"id": "E1", "name": "#12: Long Name", "short_name": "Short", "type": "Video",
			"media_length": 1500999, "views": "42", "thumbnail_small": "https://img/e1.jpg",
			"air_date": "", "last_published_date": "2024-05-01T10:00:00.000Z"
		}`)

		Convey("Content projects a listing item", func() {
			item := n.Content(rec)
			So(item.ID.Value, ShouldEqual, "E1")
			So(item.Name, ShouldEqual, "Short")
			So(item.Duration, ShouldEqual, int64(1500))
			So(item.Views, ShouldEqual, int64(42))
			So(item.URL, ShouldEqual, constant.ContentURL+"E1")
			So(item.Kind, ShouldEqual, source.KindVideo)
			So(item.Thumbnails[0].URL, ShouldEqual, "https://img/e1.jpg")
			So(item.UploadDate, ShouldEqual, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Unix())
			So(item.Media, ShouldBeNil)
		})

		Convey("Missing fields get defaults", func() {
			item := n.Content(record(t, `{"id":"E2"}`))
			So(item.Name, ShouldEqual, Untitled)
			So(item.Duration, ShouldEqual, int64(0))
			So(item.Thumbnails[0].URL, ShouldEqual, "")
			So(item.UploadDate, ShouldEqual, int64(0))
		})

		Convey("Media picks the longer video URL", func() {
			rec.DownloadURL = "https://cdn/v.mp4"
			rec.StreamURL = "https://cdn/stream/v.m3u8"
			media, err := n.Media(rec)
			So(err, ShouldBeNil)
			So(media.URL, ShouldEqual, rec.StreamURL)
			So(media.Headers["Sec-Fetch-Dest"], ShouldEqual, "video")
		})

		Convey("Audio media carries its duration and range header", func() {
			rec.Type = upstream.TypeAudio
			rec.DownloadURL = "https://cdn/a.mp3"
			media, err := n.Media(rec)
			So(err, ShouldBeNil)
			So(media.Kind, ShouldEqual, source.KindAudio)
			So(media.Duration, ShouldEqual, int64(1500))
			So(media.Headers["range"], ShouldEqual, "-")
		})

		Convey("Media without a download URL is unavailable", func() {
			_, err := n.Media(rec)
			So(errors.Is(err, upstream.ErrUpstreamUnavailable), ShouldBeTrue)
		})

		Convey("Details keeps the requested URL", func() {
			item := n.Details(rec, constant.VideoURL+"id=E1")
			So(item.URL, ShouldEqual, constant.VideoURL+"id=E1")
		})
	})
}

func TestRecommendations(t *testing.T) {
	Convey("Recommendations", t, func() {
		n := fixed()
		rec := record(t, `{
			"id": "CUR",
			"next_episode": {"id": "N", "type": "Audio"},
			"previous_episode": {"id": "P", "type": "Article"},
			"extras": {"content_list": [{"id": "X", "type": "Video"}, {"id": "ART", "type": "Article"}, {"id": "N", "type": "Audio"}]},
			"in_album": [{"id": "A1"}, {"id": "CUR"}, {"id": "X"}],
			"recommendations": [{"id": "R1"}, {"id": "A1"}, {"id": "CUR"}]
		}`)

		items := n.Recommendations(rec, "CUR")
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID.Value
		}

		So(ids, ShouldResemble, []string{"N", "X", "A1", "R1"})
	})
}

func TestSearch(t *testing.T) {
	hit := func(id string, cols ...string) *upstream.SearchHit {
		h := &upstream.SearchHit{ID: id}
		fields := []**upstream.Column{&h.Column1, &h.Column2, &h.Column3, &h.Column4}
		for i, c := range cols {
			if c != "" {
				*fields[i] = &upstream.Column{Value: upstream.Text(c)}
			}
		}
		return h
	}

	Convey("Given search hits", t, func() {
		n := fixed()

		Convey("content hits carry the episode number", func() {
			item := n.ContentFromSearch(hit("C1", "Whit's End", "https://img", "Episode", "123"))
			So(item.Name, ShouldEqual, "#123: Whit's End")
			So(item.URL, ShouldEqual, constant.ContentURL+"C1")
			So(item.Duration, ShouldBeGreaterThanOrEqualTo, 0)
		})

		Convey("adventure hits route to badge pages", func() {
			item := n.ContentFromSearch(hit("C2", "Camp", "", "Adventure"))
			So(item.URL, ShouldEqual, constant.BadgeURL+"C2")

			n.Caps.Badges = false
			item = n.ContentFromSearch(hit("C2", "Camp", "", "Adventure"))
			So(item.URL, ShouldEqual, constant.ContentURL+"C2")
		})

		Convey("grouping hits estimate their size from runtime", func() {
			item := n.PlaylistFromSearch(hit("G1", "", "https://img", "5520000"))
			So(item.Name, ShouldEqual, Untitled)
			So(item.ItemCount, ShouldEqual, 4)
			So(item.URL, ShouldEqual, constant.GroupURL+"G1")
		})

		Convey("badge hits route to badge pages", func() {
			item := n.PlaylistFromSearch(hit("B1", "Explorer", "", "Badge"))
			So(item.URL, ShouldEqual, constant.BadgeURL+"B1")
			So(item.ItemCount, ShouldEqual, 0)
		})
	})

	Convey("Rank", t, func() {
		names := []string{"The End", "whit's end", "Beyond Whit's End", "Other", "Whit's End Again", "Another"}
		ranked := Rank(names, "Whit's End", func(s string) string { return s })
		So(ranked, ShouldResemble, []string{"whit's end", "Whit's End Again", "Beyond Whit's End", "The End", "Other", "Another"})
		So(names[0], ShouldEqual, "The End")
		So(Rank(names, " ", func(s string) string { return s }), ShouldResemble, names)
	})
}

func TestPlaylists(t *testing.T) {
	Convey("Given playlist records", t, func() {
		n := fixed()

		Convey("channel groupings fall back to album name and count members", func() {
			var g upstream.Grouping
			So(json.Unmarshal([]byte(`{"id":"G","album_name":"Album 1","thumbnail_medium":"t","contentList":[{"id":"a"},{"id":"b"}]}`), &g), ShouldBeNil)
			item := n.PlaylistFromGrouping(&g)
			So(item.Name, ShouldEqual, "Album 1")
			So(item.Thumbnail, ShouldEqual, "t")
			So(item.ItemCount, ShouldEqual, 2)

			g.AlbumName = ""
			So(n.PlaylistFromGrouping(&g).Name, ShouldEqual, UntitledAlbum)
		})

		Convey("grouping details keep playable members linked through link_to_id", func() {
			var g upstream.Grouping
			So(json.Unmarshal([]byte(`{
				"name": "Album 2", "album_copyright_year": 1995,
				"contentList": [
					{"id": "m1", "link_to_id": "E1", "type": "Audio", "short_name": "One", "media_length": 60000},
					{"id": "m2", "link_to_id": "E2", "type": "Article"},
					{"id": "m3", "type": "Video"}
				]
			}`), &g), ShouldBeNil)

			item := n.GroupingDetails("G2", constant.GroupURL+"G2", &g)
			So(item.Name, ShouldEqual, "Album 2")
			So(item.ItemCount, ShouldEqual, 2)
			So(item.Contents[0].ID.Value, ShouldEqual, "E1")
			So(item.Contents[0].URL, ShouldEqual, constant.ContentURL+"E1")
			So(item.Contents[0].Duration, ShouldEqual, int64(60))
			So(item.Contents[1].ID.Value, ShouldEqual, "m3")
			So(item.Contents[0].UploadDate, ShouldEqual, time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC).Unix())
		})

		Convey("badge details use requirement content and a fallback title", func() {
			var b upstream.Badge
			So(json.Unmarshal([]byte(`{"requirements":[{"contentToComplete":{"id":"E9","type":"Audio"}},{"contentToComplete":null},{}]}`), &b), ShouldBeNil)
			item := n.BadgeDetails("B7", constant.BadgeURL+"B7", &b)
			So(item.Name, ShouldEqual, "Badge B7")
			So(item.Contents, ShouldHaveLength, 1)
		})

		Convey("topic details use recommendations", func() {
			var tp upstream.Topic
			So(json.Unmarshal([]byte(`{"name":"Honesty","recommendations":[{"id":"E1","type":"Audio"},{"id":"E2","type":"Video"}]}`), &tp), ShouldBeNil)
			item := n.TopicDetails("T1", constant.ThemeURL+"T1", &tp)
			So(item.Name, ShouldEqual, "Honesty")
			So(item.ItemCount, ShouldEqual, 2)
		})
	})
}

func TestComment(t *testing.T) {
	Convey("Comment maps a comment and its replies", t, func() {
		var rec upstream.Comment
		So(json.Unmarshal([]byte(`{
			"id": "C1", "message": "Great!", "userName": "Eugene", "viewerProfileId": "V1",
			"userProfilePicture": "https://pic", "numberOfLikes": 3, "numberOfComments": 1,
			"createdDateTimestamp": 1717977600000,
			"comments": [{"id": "R1", "message": "Agreed", "userName": "Connie", "createdDateTimestamp": "2024-06-10T01:00:00Z"}]
		}`), &rec), ShouldBeNil)

		n := fixed()
		item := n.Comment(&rec, constant.ContentURL+"E1", source.CommentContext{ContentID: "E1", ThreadID: "A1"})

		So(item.ID(), ShouldEqual, "C1")
		So(item.Author.Name, ShouldEqual, "Eugene")
		So(item.Author.ID.Value, ShouldEqual, "V1")
		So(item.Likes, ShouldEqual, 3)
		So(item.ReplyCount, ShouldEqual, 1)
		So(item.Date, ShouldEqual, int64(1717977600))
		So(item.Context.Direct, ShouldBeFalse)

		So(item.Replies, ShouldHaveLength, 1)
		reply := item.Replies[0]
		So(reply.Context.ParentID, ShouldEqual, "C1")
		So(reply.Context.ThreadID, ShouldEqual, "A1")
		So(reply.ID(), ShouldEqual, "R1")
		So(reply.ReplyCount, ShouldEqual, 0)
	})
}

func TestDescription(t *testing.T) {
	Convey("Given a detailed record", t, func() {
		rec := record(t, `{
			"id": "E1",
			"description": "An adventure.",
			"content_body": "<p>Look <img class=\"x\" src=\"https://img/1.png\"></p>",
			"air_date": "1994-03-05T00:00:00.000Z",
			"authors": [{"id": "P1", "name": "Paul", "role": "Writer"}, {"name": "Dave", "role": "Director"}],
			"characters": [{"id": "W", "name": "John Whittaker", "nickname": "Whit"}],
			"tags": [{"topic_id": "T1", "name": "Honesty"}],
			"bible_verse": "Proverbs 12:22",
			"relative_air_day": "Aired Today"
		}`)

		Convey("blocks appear in order", func() {
			d := fixed().Description(rec)
			blocks := strings.Split(d, "\n\n")
			So(blocks, ShouldHaveLength, 7)
			So(blocks[0], ShouldEqual, "An adventure.")
			So(blocks[1], ShouldContainSubstring, `<a href="https://img/1.png" target="_blank" rel="noopener noreferrer">[Image]</a>`)
			So(blocks[2], ShouldEqual, "Air Date: 1994/03/05")
			So(blocks[3], ShouldEqual, `Writer: <a href="`+constant.CastURL+`P1" target="_blank">Paul</a>`+"\nDirector: Dave")
			So(blocks[4], ShouldEqual, `Characters: <a href="`+constant.CharactersURL+`W" target="_blank">Whit</a>`)
			So(blocks[5], ShouldStartWith, "Themes: <a href=")
			So(blocks[6], ShouldEqual, "Bible Verse: Proverbs 12:22")
			So(d, ShouldNotContainSubstring, "Devotional")
			So(d, ShouldNotContainSubstring, "Relative Air Day")
		})

		Convey("theme links follow the capability", func() {
			n := fixed()
			n.Caps.Themes = false
			So(n.Description(rec), ShouldContainSubstring, "Themes: Honesty")
		})

		Convey("debug adds raw fields", func() {
			n := fixed()
			n.Debug = true
			d := n.Description(rec)
			So(d, ShouldContainSubstring, "ID: E1")
			So(d, ShouldContainSubstring, "Relative Air Day: Aired Today")
		})

		Convey("an empty record has an empty description", func() {
			So(fixed().Description(record(t, `{}`)), ShouldEqual, "")
		})
	})
}
