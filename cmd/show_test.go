package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jeremyfitness/fitplayer/content"
	. "github.com/smartystreets/goconvey/convey"
)

func TestShowPost(t *testing.T) {
	Convey("Given a post", t, func() {
		post := &content.Post{
			Type:   content.KindPost,
			Title:  "Recovery",
			Author: "Coach Sam",
			Body:   strings.Repeat("stretch ", 30),
		}

		Convey("When it is shown", func() {
			var out bytes.Buffer
			s := &shower{out: &out, width: 40}
			So(post.Accept(s), ShouldBeNil)

			Convey("Then the body is wrapped and indented", func() {
				lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
				So(lines[0], ShouldContainSubstring, "Recovery")
				So(lines[0], ShouldContainSubstring, "Coach Sam")

				for _, line := range lines[2:] {
					So(len(line), ShouldBeLessThanOrEqualTo, 40)
					So(line, ShouldStartWith, "  ")
				}
			})
		})
	})
}

func TestParseRates(t *testing.T) {
	Convey("Given configured rates", t, func() {
		rates := parseRates([]string{"0.5", "1", "1.5x", "fast", "-2", " 2 "})

		Convey("Then only positive numbers survive", func() {
			So(rates, ShouldResemble, []float64{0.5, 1, 1.5, 2})
		})
	})
}
