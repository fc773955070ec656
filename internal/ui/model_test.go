package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("Without a notification the view is untouched", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("When a notification arrives", func() {
			cmd := m.Update(NotificationMsg("Speed 2x"))

			Convey("Then it is appended to the last line", func() {
				So(cmd, ShouldNotBeNil)
				So(m.Current(), ShouldEqual, "Speed 2x")
				So(m.View("a\nb"), ShouldContainSubstring, "Speed 2x")
			})

			Convey("Then its own clear message removes it", func() {
				m.Update(ClearNotificationMsg{at: m.notifiedAt})
				So(m.Current(), ShouldBeEmpty)
			})

			Convey("Then a stale clear message is ignored", func() {
				m.Update(ClearNotificationMsg{})
				So(m.Current(), ShouldEqual, "Speed 2x")
			})
		})
	})
}
