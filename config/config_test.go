package config

import (
	"testing"

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
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every registered field has a value", func() {
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Player defaults match the control surface expectations", func() {
			So(viper.GetInt(key.PlayerIdleHideMs), ShouldEqual, 3000)
			So(viper.GetInt(key.PlayerLeaveHideMs), ShouldEqual, 1500)
			So(viper.GetStringSlice(key.PlayerPlaybackRates), ShouldContain, "1")
		})

		Convey("EnvKeyReplacer converts dots to underscores", func() {
			So(EnvKeyReplacer.Replace("player.idle_hide_ms"), ShouldEqual, "player_idle_hide_ms")
		})

		Convey("Env() prefixes the application name", func() {
			f := Default[key.PlayerLoop]
			So(f.Env(), ShouldEqual, "FITPLAYER_PLAYER_LOOP")
		})

		Convey("TypeName() reports float fields", func() {
			f := Default[key.PlayerVolumeStep]
			So(f.TypeName(), ShouldEqual, "float")
		})
	})
}

func TestReadConfig(t *testing.T) {
	Convey("Given a fitplayer.toml in the config directory", t, func() {
		t.Setenv(where.EnvConfigPath, "/settings")
		So(Path(), ShouldEqual, "/settings/fitplayer.toml")

		err := filesystem.API().WriteFile(Path(), []byte("[player]\nloop = true\nidle_hide_ms = 4500\n"), 0o644)
		So(err, ShouldBeNil)

		Convey("Its values override the defaults", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetBool(key.PlayerLoop), ShouldBeTrue)
			So(viper.GetInt(key.PlayerIdleHideMs), ShouldEqual, 4500)
		})

		Convey("A malformed file is reported", func() {
			So(filesystem.API().WriteFile(Path(), []byte("[player\n"), 0o644), ShouldBeNil)
			So(Setup(), ShouldNotBeNil)
		})
	})
}
