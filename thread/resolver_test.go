package thread

import (
	"net/http"
	"testing"

	"github.com/odyssey-club/aiosource/internal/cache"
	"github.com/odyssey-club/aiosource/network"
	"github.com/odyssey-club/aiosource/network/networktest"
	"github.com/odyssey-club/aiosource/upstream"
	. "github.com/smartystreets/goconvey/convey"
)

var noComments = map[string]any{"comments": []any{}}

func albums(groupings ...map[string]any) map[string]any {
	return map[string]any{"contentGroupings": groupings}
}

func album(id, name string, members ...map[string]any) map[string]any {
	return map[string]any{"id": id, "name": name, "contentList": members}
}

func badges(ids ...string) map[string]any {
	hits := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		hits = append(hits, map[string]any{"id": id})
	}
	return map[string]any{"resultObjects": []map[string]any{{"objectName": upstream.ObjectBadge, "results": hits}}}
}

func newResolver(gw *networktest.Gateway) *Resolver {
	return NewResolver(upstream.NewClient(gw), cache.NewMemory[string, Target]())
}

func TestCleanName(t *testing.T) {
	Convey("CleanName", t, func() {
		So(CleanName("#123: The Search for Whit"), ShouldEqual, "The Search for Whit")
		So(CleanName("  #7:Gone  "), ShouldEqual, "Gone")
		So(CleanName("No Number Here"), ShouldEqual, "No Number Here")
		So(CleanName("Part #2: middle"), ShouldEqual, "Part #2: middle")
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a resolver", t, func() {
		gw := networktest.New()

		Convey("Content with its own comments is a direct thread", func() {
			gw.JSON(http.MethodPost, "/comment/search", map[string]any{"comments": []map[string]any{{"id": "c1"}}})
			r := newResolver(gw)

			target, ok := r.Resolve("E1")
			So(ok, ShouldBeTrue)
			So(target, ShouldResemble, Target{ThreadID: "E1", Direct: true})
			So(gw.Count("/contentgrouping/search"), ShouldEqual, 0)
		})

		Convey("Content inside an ordinary album resolves to the album", func() {
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				JSON(http.MethodPost, "/contentgrouping/search", albums(
					album("A0", "Other", map[string]any{"id": "X1"}),
					album("A1", "Album 12", map[string]any{"id": "E2xyz"}),
				))
			r := newResolver(gw)

			target, ok := r.Resolve("E2")
			So(ok, ShouldBeTrue)
			So(target, ShouldResemble, Target{ThreadID: "A1"})

			Convey("and a second call is served from the cache", func() {
				gw.Reset()
				again, ok := r.Resolve("E2")
				So(ok, ShouldBeTrue)
				So(again, ShouldResemble, target)
				So(gw.Calls(), ShouldBeEmpty)
			})
		})

		Convey("Null albums and members in the album scan are skipped", func() {
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				Raw(http.MethodPost, "/contentgrouping/search", http.StatusOK,
					`{"contentGroupings":[null,{"id":"A1","name":"Album 12","contentList":[null,{"id":"E2"}]}]}`)

			target, ok := newResolver(gw).Resolve("E2")
			So(ok, ShouldBeTrue)
			So(target, ShouldResemble, Target{ThreadID: "A1"})
		})

		Convey("Content inside a badge-marked album resolves through a badge search", func() {
			var term string
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				JSON(http.MethodPost, "/contentgrouping/search", albums(
					album("A2", "Whit's End ½", map[string]any{"id": "E3", "short_name": "#45: Whit's End"}),
				)).
				Handle(http.MethodPost, "/search", func(call networktest.Call) (network.Response, error) {
					term = call.Body
					return network.Response{Status: 200, Body: []byte(`{"resultObjects":[{"objectName":"Badge__c","results":[{"id":"B9"},{"id":"B10"}]}]}`)}, nil
				})
			r := newResolver(gw)

			target, ok := r.Resolve("E3")
			So(ok, ShouldBeTrue)
			So(target, ShouldResemble, Target{ThreadID: "B9"})
			So(term, ShouldContainSubstring, `"searchTerm":"Whit's End"`)
			So(term, ShouldContainSubstring, upstream.ObjectBadge)
		})

		Convey("A badge-marked album without a member short name searches by album name", func() {
			var term string
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				JSON(http.MethodPost, "/contentgrouping/search", albums(
					album("A3", "#12: Camp Whit ½", map[string]any{"id": "E4"}),
				)).
				Handle(http.MethodPost, "/search", func(call networktest.Call) (network.Response, error) {
					term = call.Body
					return network.Response{Status: 200, Body: []byte(`{"resultObjects":[{"objectName":"Badge__c","results":[{"id":"B1"}]}]}`)}, nil
				})

			target, ok := newResolver(gw).Resolve("E4")
			So(ok, ShouldBeTrue)
			So(target.ThreadID, ShouldEqual, "B1")
			So(term, ShouldContainSubstring, `"searchTerm":"Camp Whit ½"`)
		})

		Convey("Content outside every album falls back to its own name", func() {
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				JSON(http.MethodPost, "/contentgrouping/search", albums(album("A0", "Other", map[string]any{"id": "X1"}))).
				JSON(http.MethodPost, "/search", badges("B5")).
				JSON(http.MethodGet, "/content/E5", map[string]any{"id": "E5", "short_name": "#900: Lost"})

			target, ok := newResolver(gw).Resolve("E5")
			So(ok, ShouldBeTrue)
			So(target.ThreadID, ShouldEqual, "B5")
			So(gw.Count("/content/E5"), ShouldEqual, 1)
		})

		Convey("No badge hit means no thread, and the miss is not cached", func() {
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				JSON(http.MethodPost, "/contentgrouping/search", albums()).
				JSON(http.MethodPost, "/search", badges()).
				JSON(http.MethodGet, "/content/E6", map[string]any{"id": "E6", "name": "Nothing"})
			r := newResolver(gw)

			_, ok := r.Resolve("E6")
			So(ok, ShouldBeFalse)

			gw.Reset()
			_, ok = r.Resolve("E6")
			So(ok, ShouldBeFalse)
			So(gw.Count("/comment/search"), ShouldEqual, 1)
		})

		Convey("A failing upstream call aborts resolution", func() {
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				Fail(http.MethodPost, "/contentgrouping/search")

			_, ok := newResolver(gw).Resolve("E7")
			So(ok, ShouldBeFalse)
			So(gw.Count("/search"), ShouldEqual, 2)
			So(gw.Count("/v1/search"), ShouldEqual, 0)
		})

		Convey("A content without any name has no thread", func() {
			gw.JSON(http.MethodPost, "/comment/search", noComments).
				JSON(http.MethodPost, "/contentgrouping/search", albums()).
				JSON(http.MethodGet, "/content/E8", map[string]any{"id": "E8"})

			_, ok := newResolver(gw).Resolve("E8")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestFindMember(t *testing.T) {
	Convey("findMember ignores nil albums and members", t, func() {
		albums := []*upstream.Grouping{
			nil,
			{ID: "A1", ContentList: upstream.ContentList{nil, {ID: "E4abc"}}},
		}

		album, member, ok := findMember(albums, "E4")
		So(ok, ShouldBeTrue)
		So(album.ID, ShouldEqual, "A1")
		So(member.ID, ShouldEqual, "E4abc")

		_, _, ok = findMember([]*upstream.Grouping{nil}, "E4")
		So(ok, ShouldBeFalse)
	})
}
