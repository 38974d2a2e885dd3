package cmd

import (
	"testing"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/odyssey-club/aiosource/internal/cache"
	"github.com/odyssey-club/aiosource/thread"
	. "github.com/smartystreets/goconvey/convey"
)

func TestForgetThread(t *testing.T) {
	Convey("Given a persisted thread cache", t, func() {
		filesystem.SetMemMapFs()
		path := "/cache/threads.json"

		threads := cache.NewPersistent[string, thread.Target](path, 0)
		So(threads.Set("E1", thread.Target{ThreadID: "A1"}), ShouldBeNil)
		So(threads.Set("E2", thread.Target{ThreadID: "E2", Direct: true}), ShouldBeNil)

		Convey("A content URL forgets only its own thread", func() {
			id, err := forgetThread(path, constant.ContentURL+"E1")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "E1")

			reopened := cache.NewPersistent[string, thread.Target](path, 0)
			So(reopened.Get("E1").IsAbsent(), ShouldBeTrue)
			So(reopened.Get("E2").MustGet().Direct, ShouldBeTrue)
		})

		Convey("A bare id works too", func() {
			_, err := forgetThread(path, "E2")
			So(err, ShouldBeNil)
			So(cache.NewPersistent[string, thread.Target](path, 0).Get("E2").IsAbsent(), ShouldBeTrue)
		})

		Convey("A blank argument is an error", func() {
			_, err := forgetThread(path, "  ")
			So(err, ShouldNotBeNil)
		})
	})
}
