package source

import (
	"testing"

	"github.com/odyssey-club/aiosource/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestContentItem(t *testing.T) {
	Convey("ContentItem", t, func() {
		c := &ContentItem{ID: NewID("a35"), URL: constant.ContentURL + "a35"}

		Convey("IDs belong to the platform", func() {
			So(c.ID.Platform, ShouldEqual, constant.PlatformName)
			So(c.ID.String(), ShouldEqual, "a35")
		})

		Convey("An unknown upload date is the zero time", func() {
			So(c.Uploaded().IsZero(), ShouldBeTrue)
			c.UploadDate = 86400
			So(c.Uploaded().Unix(), ShouldEqual, int64(86400))
		})

		Convey("Playable requires a resolved media URL", func() {
			So(c.Playable(), ShouldBeFalse)
			c.Media = &MediaSource{Kind: KindAudio, URL: "https://cdn/ep.mp3"}
			So(c.Playable(), ShouldBeTrue)
		})
	})
}

func TestClubChannel(t *testing.T) {
	Convey("ClubChannel", t, func() {
		Convey("defaults its URL to the platform link", func() {
			ch := ClubChannel("")
			So(ch.URL, ShouldEqual, constant.PlatformLink)
			So(ch.Name, ShouldEqual, "Adventures In Odyssey Club")
			So(ch.Banner, ShouldNotBeEmpty)
		})

		Convey("keeps a caller supplied URL", func() {
			So(ClubChannel("https://x").URL, ShouldEqual, "https://x")
		})
	})

	Convey("PlatformAuthor", t, func() {
		a := PlatformAuthor()
		So(a.Name, ShouldEqual, constant.PlatformName)
		So(a.Thumbnail, ShouldEqual, constant.LogoURL)
	})
}
