package cache

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type failing[K comparable, V any] struct{ *Memory[K, V] }

func (f *failing[K, V]) Set(K, V) error { return errors.New("disk full") }

func TestMemory(t *testing.T) {
	Convey("Given an empty memory cache", t, func() {
		c := NewMemory[string, int]()

		Convey("A miss is None", func() {
			So(c.Get("a35").IsAbsent(), ShouldBeTrue)
		})

		Convey("A set value is returned", func() {
			So(c.Set("a35", 7), ShouldBeNil)
			So(c.Get("a35").MustGet(), ShouldEqual, 7)
			So(c.Len(), ShouldEqual, 1)
		})
	})
}

func TestPersistent(t *testing.T) {
	Convey("Given a persistent cache", t, func() {
		path := filepath.Join("/cache", strings.ReplaceAll(t.Name(), "/", "_")+".json")
		c := NewPersistent[string, string](path, 0)

		Convey("Values survive a new handle on the same file", func() {
			So(c.Set("A35", "a3B"), ShouldBeNil)

			reopened := NewPersistent[string, string](path, 0)
			So(reopened.Get("A35").OrEmpty(), ShouldEqual, "a3B")
		})

		Convey("Keys are case sensitive", func() {
			So(c.Set("a0B", "x"), ShouldBeNil)
			So(c.Get("a0b").IsAbsent(), ShouldBeTrue)
		})

		Convey("Delete removes only that entry, for later handles too", func() {
			So(c.Set("gone", "x"), ShouldBeNil)
			So(c.Set("kept", "y"), ShouldBeNil)
			So(c.Delete("gone"), ShouldBeNil)
			So(c.Get("gone").IsAbsent(), ShouldBeTrue)

			reopened := NewPersistent[string, string](path, 0)
			So(reopened.Get("gone").IsAbsent(), ShouldBeTrue)
			So(reopened.Get("kept").OrEmpty(), ShouldEqual, "y")
		})

		Convey("Deleting from a file that does not exist is fine", func() {
			So(NewPersistent[string, string]("/cache/never-written.json", 0).Delete("x"), ShouldBeNil)
		})
	})

	Convey("Given an expired persistent cache", t, func() {
		c := NewPersistent[string, int]("/cache/expiring.json", time.Nanosecond)
		So(c.Set("k", 1), ShouldBeNil)
		time.Sleep(time.Millisecond)

		Convey("Entries are gone", func() {
			So(c.Get("k").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestLayered(t *testing.T) {
	Convey("Given a layered cache", t, func() {
		back := NewMemory[string, int]()
		l := NewLayered[string, int](back)

		Convey("Back hits are promoted", func() {
			_ = back.Set("k", 3)
			So(l.Get("k"), ShouldResemble, mo.Some(3))
			So(l.front.Get("k").IsPresent(), ShouldBeTrue)
		})

		Convey("Writes reach both layers", func() {
			So(l.Set("k", 4), ShouldBeNil)
			So(back.Get("k").MustGet(), ShouldEqual, 4)
		})

		Convey("A failing back layer keeps the front value", func() {
			f := &failing[string, int]{Memory: NewMemory[string, int]()}
			l := NewLayered[string, int](f)
			So(l.Set("k", 5), ShouldNotBeNil)
			So(l.Get("k").MustGet(), ShouldEqual, 5)
		})
	})
}
