package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeremyfitness/fitplayer/control"
	"github.com/jeremyfitness/fitplayer/engine"
	"github.com/jeremyfitness/fitplayer/internal/ui"
	"github.com/jeremyfitness/fitplayer/style"
	"github.com/jeremyfitness/fitplayer/util"
	"github.com/samber/lo"
)

// statefulBubble is the player screen: the control surface plus the terminal widgets around it.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	player *control.Player

	// events carries whatever the player posts from other goroutines.
	events chan any
	// done is closed on unmount so no goroutine blocks on events afterwards.
	done   chan struct{}
	exited <-chan struct{}

	spinnerC  spinner.Model
	inputC    textinput.Model
	rateC     list.Model
	qualityC  list.Model
	helpC     help.Model
	notifier  *ui.Model
	mouseDown bool

	width, height int

	options *Options
}

// playerMsg wraps a message posted by the player for Handle.
type playerMsg struct {
	msg any
}

type engineExitedMsg struct{}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) post(msg any) {
	select {
	case b.events <- msg:
	case <-b.done:
	}
}

// unmount tears the player down. It is safe to call more than once.
func (b *statefulBubble) unmount() {
	if b.player.Closed() {
		return
	}

	b.player.Close()
	close(b.done)
}

func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height

	w := b.contentWidth()
	b.helpC.Width = w
	b.inputC.Width = max(w-lipgloss.Width(b.inputC.Prompt)-1, 1)
	b.rateC.SetWidth(w)
	b.qualityC.SetWidth(w)
}

func newBubble(options *Options, e engine.Engine, scheduler control.Scheduler) (*statefulBubble, error) {
	keymap := newStatefulKeymap()
	bubble := &statefulBubble{
		keymap:   keymap,
		events:   make(chan any, 64),
		done:     make(chan struct{}),
		notifier: &ui.Model{},
		options:  options,
	}

	bubble.player = control.New(options.Player, scheduler, bubble.post)
	opts := bubble.player.Options()

	makeList := func(title string, items []list.Item) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(0)
		delegate.ShowDescription = false
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))

		listC := list.New(items, delegate, 0, len(items)+4)
		listC.KeyMap = keymap.forList()
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
		listC.SetShowHelp(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetFilteringEnabled(false)

		return listC
	}

	bubble.rateC = makeList("Speed", lo.Map(opts.PlaybackRates, func(rate float64, _ int) list.Item {
		return &listItem{internal: rate}
	}))
	bubble.qualityC = makeList("Quality", lo.Map(opts.QualityOptions, func(quality string, _ int) list.Item {
		return &listItem{internal: quality}
	}))

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "1:23 or 1:02:03"
	bubble.inputC.CharLimit = 12
	bubble.inputC.Prompt = "Jump to: "

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	if err := bubble.player.Attach(e); err != nil {
		return nil, err
	}

	return bubble, nil
}

// markSelected flags the active value in both menus and moves the cursor onto it.
func (b *statefulBubble) markSelected() {
	s := b.player.State()

	mark := func(l *list.Model, selected func(any) bool) {
		for i, item := range l.Items() {
			it := item.(*listItem)
			it.marked = selected(it.internal)
			if it.marked {
				l.Select(i)
			}
		}
	}

	mark(&b.rateC, func(v any) bool { return v == s.PlaybackRate })
	mark(&b.qualityC, func(v any) bool { return v == s.SelectedQuality })
}
