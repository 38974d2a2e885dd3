package upstream

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseTime(t *testing.T) {
	Convey("ParseTime", t, func() {
		Convey("reads ISO timestamps with zone", func() {
			ts, ok := ParseTime("2023-11-05T14:00:00.000Z", time.UTC)
			So(ok, ShouldBeTrue)
			So(ts.Unix(), ShouldEqual, int64(1699192800))
		})

		Convey("reads bare dates in the given location", func() {
			loc := time.FixedZone("CST", -6*3600)
			ts, ok := ParseTime("2023-11-05", loc)
			So(ok, ShouldBeTrue)
			So(ts.Location(), ShouldEqual, loc)
			So(ts.Day(), ShouldEqual, 5)
		})

		Convey("reads epoch milliseconds", func() {
			ts, ok := ParseTime("1699192800000", time.UTC)
			So(ok, ShouldBeTrue)
			So(ts.Unix(), ShouldEqual, int64(1699192800))
		})

		Convey("rejects empty, zero and garbage values", func() {
			for _, s := range []string{"", "0", "1970-01-01T00:00:00Z", "not a date"} {
				_, ok := ParseTime(s, time.UTC)
				So(ok, ShouldBeFalse)
			}
		})
	})
}
