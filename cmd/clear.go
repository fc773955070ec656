package cmd

import (
	"fmt"

	"github.com/jeremyfitness/fitplayer/icon"
	"github.com/jeremyfitness/fitplayer/internal/cache"
	"github.com/jeremyfitness/fitplayer/util"
	"github.com/jeremyfitness/fitplayer/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"watch history", "history", mo.None[string](), where.History},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("sockets", "s", false, "remove mpv sockets left by earlier runs")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached files and watch history",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if lo.Must(cmd.Flags().GetBool("sockets")) {
			anyCleared = true

			removed, err := cache.Prune(where.Sockets(), 0)
			handleErr(err)

			fmt.Printf("%s removed %d sockets\n", icon.Get(icon.Success), removed)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
