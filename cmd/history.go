package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeremyfitness/fitplayer/color"
	"github.com/jeremyfitness/fitplayer/history"
	"github.com/jeremyfitness/fitplayer/icon"
	"github.com/jeremyfitness/fitplayer/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().StringP("remove", "d", "", "Forget the position saved for a URL")
	historyCmd.Flags().BoolP("urls", "u", false, "Print only the URLs")

	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists remembered playback positions, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List remembered playback positions",
	Run: func(cmd *cobra.Command, args []string) {
		if url := lo.Must(cmd.Flags().GetString("remove")); url != "" {
			handleErr(history.Remove(url))
			fmt.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), url)
			return
		}

		saved, err := history.Get()
		handleErr(err)

		entries := history.Sorted(saved)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("Nothing watched yet"))
			return
		}

		urlsOnly := lo.Must(cmd.Flags().GetBool("urls"))
		for _, e := range entries {
			if urlsOnly {
				cmd.Println(e.URL)
				continue
			}

			cmd.Println(e.String())
			if e.Title != "" {
				cmd.Println(style.Faint("  " + e.URL))
			}
		}
	},
}
