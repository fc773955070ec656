package cmd

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jeremyfitness/fitplayer/control"
	"github.com/jeremyfitness/fitplayer/history"
	"github.com/jeremyfitness/fitplayer/key"
	"github.com/jeremyfitness/fitplayer/log"
	"github.com/jeremyfitness/fitplayer/tui"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

// playCmd mounts the control surface for a single video.
var playCmd = &cobra.Command{
	Use:   "play [url]",
	Short: "Play a video with the terminal control surface",
	Long:  "Play a video URL or local file. Without an argument the URL is asked for interactively.",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("title", "t", "", "Title shown above the progress bar")
	f.String("thumbnail", "", "Poster image shown before playback starts")
	f.BoolP("autoplay", "a", false, "Start playing as soon as the media is ready")
	f.BoolP("muted", "m", false, "Start muted")
	f.BoolP("loop", "l", false, "Loop the video")
	f.StringP("quality", "q", "", "Initially selected quality label")
	f.BoolP("resume", "r", false, "Resume from the remembered position")

	lo.Must0(cmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return viper.GetStringSlice(key.PlayerQualityOptions), cobra.ShellCompDirectiveNoFileComp
	}))
}

// boolFlag prefers an explicitly passed flag over the configured value.
func boolFlag(flags *pflag.FlagSet, name, configKey string) bool {
	if flags.Changed(name) {
		return lo.Must(flags.GetBool(name))
	}
	return viper.GetBool(configKey)
}

func optionalFlag(flags *pflag.FlagSet, name string) mo.Option[string] {
	value := strings.TrimSpace(lo.Must(flags.GetString(name)))
	if value == "" {
		return mo.None[string]()
	}
	return mo.Some(value)
}

func runPlay(cmd *cobra.Command, args []string) {
	var url string
	if len(args) == 1 {
		url = args[0]
	} else {
		input := survey.Input{
			Message: "Video URL or path:",
			Help:    "Anything mpv can open: a file, an http(s) URL or a stream.",
		}
		handleErr(survey.AskOne(&input, &url, survey.WithValidator(survey.Required)))
	}

	flags := cmd.Flags()

	options := playerOptions(strings.TrimSpace(url))
	options.Title = optionalFlag(flags, "title")
	options.Thumbnail = optionalFlag(flags, "thumbnail")
	options.Autoplay = boolFlag(flags, "autoplay", key.PlayerAutoplay)
	options.Loop = boolFlag(flags, "loop", key.PlayerLoop)
	options.Muted = lo.Must(flags.GetBool("muted"))

	if quality, ok := optionalFlag(flags, "quality").Get(); ok {
		options.DefaultQuality = quality
	}

	handleErr(play(options, boolFlag(flags, "resume", key.HistoryResume)))
}

// playerOptions builds mount options for url from the configuration.
func playerOptions(url string) control.Options {
	ms := func(k string) time.Duration {
		return time.Duration(viper.GetInt(k)) * time.Millisecond
	}

	return control.Options{
		URL:            url,
		Autoplay:       viper.GetBool(key.PlayerAutoplay),
		Loop:           viper.GetBool(key.PlayerLoop),
		QualityOptions: viper.GetStringSlice(key.PlayerQualityOptions),
		DefaultQuality: viper.GetString(key.PlayerDefaultQuality),
		PlaybackRates:  parseRates(viper.GetStringSlice(key.PlayerPlaybackRates)),
		IdleDelay:      ms(key.PlayerIdleHideMs),
		LeaveDelay:     ms(key.PlayerLeaveHideMs),
		KeyboardSeek:   viper.GetFloat64(key.PlayerKeyboardSeekSeconds),
		ButtonSeek:     viper.GetFloat64(key.PlayerButtonSeekSeconds),
		VolumeStep:     viper.GetFloat64(key.PlayerVolumeStep),
		Hooks: control.Hooks{
			OnEnded: func(control.State) {
				log.With(log.Fields{"url": url}).Info("playback finished")
			},
			OnError: func(err error) {
				log.With(log.Fields{"url": url}).Warn(err)
			},
		},
	}
}

// parseRates converts the configured rates, dropping anything that is not a positive number.
func parseRates(values []string) []float64 {
	return lo.FilterMap(values, func(v string, _ int) (float64, bool) {
		rate, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "x"), 64)
		if err != nil || rate <= 0 {
			log.Warnf("ignoring playback rate %q", v)
			return 0, false
		}
		return rate, true
	})
}

func play(options control.Options, resume bool) error {
	if options.URL == "" {
		return errors.New("nothing to play")
	}

	CheckDependencies()

	if resume {
		entry, ok, err := history.Lookup(options.URL)
		if err != nil {
			log.Warnf("reading history: %v", err)
		} else if ok {
			options.StartAt = entry.Played
			if options.Title.IsAbsent() && entry.Title != "" {
				options.Title = mo.Some(entry.Title)
			}
		}
	}

	return tui.Run(&tui.Options{
		Player:       options,
		Binary:       viper.GetString(key.PlayerBinary),
		Mouse:        viper.GetBool(key.TUIMouse),
		SaveProgress: viper.GetBool(key.HistorySaveProgress),
	})
}
