package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given pairs of versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.34.1", "0.35.0", -1},
			{"2.0.0-rc1", "1.9.9", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Given a malformed version", t, func() {
		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestFromMPV(t *testing.T) {
	Convey("Given mpv version banners", t, func() {
		v, ok := FromMPV("mpv 0.38.0 Copyright © 2000-2024 mpv/MPlayer/mplayer2 projects")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "0.38.0")

		v, ok = FromMPV("mpv v0.36.0-dirty Copyright")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "0.36.0")

		_, ok = FromMPV("mpv git-2024-01-01")
		So(ok, ShouldBeFalse)
	})
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		var status = http.StatusOK
		var body = `{"tag_name": "v0.4.1"}`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		Convey("The tag is returned without its v prefix", func() {
			v, err := fetchLatest(context.Background(), server.URL)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.4.1")
		})

		Convey("A failing status is an error", func() {
			status = http.StatusForbidden
			_, err := fetchLatest(context.Background(), server.URL)
			So(err, ShouldNotBeNil)
		})

		Convey("An empty tag is an error", func() {
			body = `{}`
			_, err := fetchLatest(context.Background(), server.URL)
			So(err, ShouldNotBeNil)
		})
	})
}
