package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jeremyfitness/fitplayer/content"
	"github.com/jeremyfitness/fitplayer/filesystem"
	"github.com/jeremyfitness/fitplayer/key"
	"github.com/jeremyfitness/fitplayer/open"
	"github.com/jeremyfitness/fitplayer/style"
	"github.com/jeremyfitness/fitplayer/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("schema", "s", "", "Print the JSON schema of a document type instead of showing a file")
	lo.Must0(showCmd.RegisterFlagCompletionFunc("schema", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(content.Kinds, func(k content.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
	}))
	showCmd.Flags().BoolP("resume", "r", false, "Resume videos from the remembered position")

	showCmd.SetOut(os.Stdout)
}

// showCmd renders a content document: videos play, images open, posts print.
var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show a video, image or post document",
	Long:  "Show a JSON content document. Reads standard input when the file is omitted or \"-\".",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if kind := lo.Must(cmd.Flags().GetString("schema")); kind != "" {
			schema, err := content.Schema(content.Kind(kind))
			handleErr(err)
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
			return
		}

		var reader io.Reader = os.Stdin
		if len(args) == 1 && args[0] != "-" {
			file, err := filesystem.API().Open(args[0])
			handleErr(err)
			defer util.Ignore(file.Close)
			reader = file
		}

		item, err := content.Decode(reader)
		handleErr(err)

		shower := &shower{
			out:    cmd.OutOrStdout(),
			resume: lo.Must(cmd.Flags().GetBool("resume")) || viper.GetBool(key.HistoryResume),
		}
		handleErr(item.Accept(shower))
	},
}

// shower is the content.Visitor behind the show command.
type shower struct {
	out    io.Writer
	resume bool
	width  int
}

func (s *shower) Video(v *content.Video) error {
	options := playerOptions(v.URL)
	options.Title = mo.Some(v.Title)
	options.Autoplay = v.Autoplay || options.Autoplay
	options.Muted = v.Muted
	options.Loop = v.Loop || options.Loop

	if v.Thumbnail != "" {
		options.Thumbnail = mo.Some(v.Thumbnail)
	}
	if len(v.QualityOptions) > 0 {
		options.QualityOptions = v.QualityOptions
	}

	return play(options, s.resume)
}

func (s *shower) Image(i *content.Image) error {
	if i.Title != "" {
		_, _ = fmt.Fprintln(s.out, style.Title(i.Title))
	}
	return open.Start(i.URL)
}

func (s *shower) Post(p *content.Post) error {
	width := s.width
	if width <= 0 {
		width = 80
		if w, _, err := util.TerminalSize(); err == nil {
			width = min(w, 100)
		}
	}

	_, err := fmt.Fprintln(s.out, renderPost(p, width))
	return err
}

func renderPost(p *content.Post, width int) string {
	header := style.Title(p.Title)
	if p.Author != "" {
		header += " " + style.Faint("by "+p.Author)
	}

	body := indent.String(wordwrap.String(p.Body, max(width-2, 10)), 2)
	return header + "\n\n" + body
}
