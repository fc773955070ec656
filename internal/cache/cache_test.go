package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jeremyfitness/fitplayer/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPrune(t *testing.T) {
	Convey("Given a directory with old and fresh files", t, func() {
		fs := filesystem.API()
		dir := filepath.Join("/", "sockets")
		So(fs.MkdirAll(dir, 0o755), ShouldBeNil)

		old := filepath.Join(dir, "mpv-old.sock")
		fresh := filepath.Join(dir, "mpv-fresh.sock")
		So(fs.WriteFile(old, nil, 0o600), ShouldBeNil)
		So(fs.WriteFile(fresh, nil, 0o600), ShouldBeNil)

		stale := time.Now().Add(-48 * time.Hour)
		So(fs.Chtimes(old, stale, stale), ShouldBeNil)

		Convey("When pruning with a one day lifetime", func() {
			removed, err := Prune(dir, 24*time.Hour)

			Convey("Then only the old file is removed", func() {
				So(err, ShouldBeNil)
				So(removed, ShouldEqual, 1)

				exists, _ := fs.Exists(old)
				So(exists, ShouldBeFalse)

				exists, _ = fs.Exists(fresh)
				So(exists, ShouldBeTrue)
			})
		})
	})
}
