package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jeremyfitness/fitplayer/filesystem"
	"github.com/jeremyfitness/fitplayer/key"
	"github.com/jeremyfitness/fitplayer/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)
	})

	Convey("Given logging is enabled", t, func() {
		t.Setenv(where.EnvConfigPath, "/cfg")
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Infof("player %s", "mounted")

		path := filepath.Join("/cfg", "logs", time.Now().Format(time.DateOnly)+".log")
		data, err := filesystem.API().ReadFile(path)
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "player mounted")
	})
}

func TestWith(t *testing.T) {
	Convey("Given logging is enabled", t, func() {
		t.Setenv(where.EnvConfigPath, "/fields")
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsJson, true)
		defer func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsJson, false)
			_ = Setup()
		}()

		So(Setup(), ShouldBeNil)

		Convey("Fields are written with the entry", func() {
			With(Fields{"command": "seek"}).Warn("queue full")

			path := filepath.Join("/fields", "logs", time.Now().Format(time.DateOnly)+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"command":"seek"`)
			So(string(data), ShouldContainSubstring, "queue full")
		})
	})
}
