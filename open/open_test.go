package open

import (
	"runtime"
	"testing"

	"github.com/jeremyfitness/fitplayer/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given an image URL", t, func() {
		cmd, ok := command("https://cdn.example.com/plan.png")

		switch runtime.GOOS {
		case constant.Windows, constant.Darwin, constant.Linux, constant.Android:
			Convey("Then the platform opener receives it as the last argument", func() {
				So(ok, ShouldBeTrue)
				So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://cdn.example.com/plan.png")
			})
		default:
			So(ok, ShouldBeFalse)
		}
	})
}
