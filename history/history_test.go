package history

import (
	"testing"
	"time"

	"github.com/jeremyfitness/fitplayer/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a partially watched video", t, func() {
		const url = "https://cdn.example.com/yoga.mp4"
		So(Remove(url), ShouldBeNil)

		Convey("When saving the position", func() {
			err := Save(url, "Evening yoga", 0.4, 1800)

			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the entry should be saved", func() {
					entry, ok, err := Lookup(url)
					So(err, ShouldBeNil)
					So(ok, ShouldBeTrue)
					So(entry.Title, ShouldEqual, "Evening yoga")
					So(entry.Position(), ShouldEqual, 720)
				})
			})
		})

		Convey("When the video is finished", func() {
			So(Save(url, "Evening yoga", 0.4, 1800), ShouldBeNil)
			So(Save(url, "Evening yoga", 0.99, 1800), ShouldBeNil)

			Convey("Then the entry is dropped", func() {
				_, ok, err := Lookup(url)
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the position is at the very start", func() {
			So(Save(url, "Evening yoga", 0.0001, 1800), ShouldBeNil)

			Convey("Then nothing is saved", func() {
				_, ok, _ := Lookup(url)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the duration is unknown", func() {
			So(Save(url, "Evening yoga", 0.5, 0), ShouldBeNil)

			_, ok, _ := Lookup(url)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEntry(t *testing.T) {
	Convey("Given entries saved at different times", t, func() {
		base := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
		entries := map[string]*Entry{
			"a": {URL: "a", UpdatedAt: base},
			"b": {URL: "b", Title: "Tabata", Played: 0.5, Duration: 600, UpdatedAt: base.Add(time.Hour)},
		}

		Convey("Sorted puts the most recent first", func() {
			sorted := Sorted(entries)
			So(sorted[0].URL, ShouldEqual, "b")
			So(sorted[1].URL, ShouldEqual, "a")
		})

		Convey("String shows the title and position", func() {
			s := entries["b"].String()
			So(s, ShouldStartWith, "Tabata : 5:00 / 10:00, ")
		})

		Convey("String falls back to the URL", func() {
			So(entries["a"].String(), ShouldStartWith, "a : ")
		})
	})
}
