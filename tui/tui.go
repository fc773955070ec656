// Package tui renders the playback control surface in the terminal.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeremyfitness/fitplayer/control"
	"github.com/jeremyfitness/fitplayer/engine"
	"github.com/jeremyfitness/fitplayer/history"
	"github.com/jeremyfitness/fitplayer/log"
	"github.com/jeremyfitness/fitplayer/util"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Player control.Options

	// Binary is the mpv executable.
	Binary string

	Mouse        bool
	SaveProgress bool
}

// Run starts mpv, mounts the control surface and blocks until the user quits.
func Run(options *Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mpv := engine.NewMPV(options.Binary)
	if err := mpv.Start(ctx, options.Player.Title.OrEmpty()); err != nil {
		return err
	}
	defer util.Ignore(mpv.Close)

	bubble, err := newBubble(options, mpv, control.RealScheduler{})
	if err != nil {
		return err
	}
	bubble.exited = mpv.Exited()
	defer bubble.unmount()

	programOptions := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if options.Mouse {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}

	_, err = tea.NewProgram(bubble, programOptions...).Run()

	if options.SaveProgress {
		bubble.saveProgress()
	}

	return err
}

func (b *statefulBubble) saveProgress() {
	s := b.player.State()
	opts := b.player.Options()

	if err := history.Save(opts.URL, opts.Title.OrEmpty(), s.Played, s.Duration); err != nil {
		log.Warnf("save progress: %v", err)
	}
}
