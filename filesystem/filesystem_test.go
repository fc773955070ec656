package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the filesystem backend", t, func() {
		Convey("It defaults to the OS backend", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It can be swapped for memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			Convey("And GacheFs writes through to it", func() {
				var g GacheFs
				So(g.MkdirAll("/cache/fitplayer", os.ModePerm), ShouldBeNil)
				f, err := g.OpenFile("/cache/fitplayer/x.json", os.O_CREATE|os.O_RDWR, 0o644)
				So(err, ShouldBeNil)
				_, err = f.Write([]byte("{}"))
				So(err, ShouldBeNil)
				So(f.Close(), ShouldBeNil)

				exists, err := API().Exists("/cache/fitplayer/x.json")
				So(err, ShouldBeNil)
				So(exists, ShouldBeTrue)
			})
		})
	})
}
