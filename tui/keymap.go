package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeremyfitness/fitplayer/color"
	"github.com/jeremyfitness/fitplayer/control"
	"github.com/jeremyfitness/fitplayer/style"
)

// statefulKeymap defines the keyboard interactions available in each state.
type statefulKeymap struct {
	state state

	// menuOpen narrows the help while a settings menu is showing.
	menuOpen bool

	quit, forceQuit,
	playPause,
	seekBackward, seekForward,
	jumpBackward, jumpForward,
	volumeUp, volumeDown, mute,
	fullscreen, theater, pip,
	restart, retry,
	rateMenu, qualityMenu,
	jump, confirm, back,
	up, down,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" ", "space", "k"),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		seekBackward: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "back 5s"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "forward 5s"),
		),
		jumpBackward: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "back 10s"),
		),
		jumpForward: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "forward 10s"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "volume down"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		theater: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theater"),
		),
		pip: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "picture-in-picture"),
		),
		restart: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "restart"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp(style.Fg(color.Orange)("r"), style.Fg(color.Orange)("retry")),
		),
		rateMenu: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "speed"),
		),
		qualityMenu: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quality"),
		),
		jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "jump to time"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// action resolves a key press to a player action.
func (k *statefulKeymap) action(msg tea.KeyMsg) control.Action {
	switch {
	case key.Matches(msg, k.playPause):
		return control.ActionPlayPause
	case key.Matches(msg, k.seekBackward):
		return control.ActionSeekBackward
	case key.Matches(msg, k.seekForward):
		return control.ActionSeekForward
	case key.Matches(msg, k.jumpBackward):
		return control.ActionJumpBackward
	case key.Matches(msg, k.jumpForward):
		return control.ActionJumpForward
	case key.Matches(msg, k.volumeUp):
		return control.ActionVolumeUp
	case key.Matches(msg, k.volumeDown):
		return control.ActionVolumeDown
	case key.Matches(msg, k.mute):
		return control.ActionMute
	case key.Matches(msg, k.fullscreen):
		return control.ActionFullscreen
	case key.Matches(msg, k.theater):
		return control.ActionTheater
	case key.Matches(msg, k.pip):
		return control.ActionPiP
	case key.Matches(msg, k.restart):
		return control.ActionRestart
	case key.Matches(msg, k.rateMenu):
		return control.ActionRateMenu
	case key.Matches(msg, k.qualityMenu):
		return control.ActionQualityMenu
	case key.Matches(msg, k.back):
		return control.ActionCloseMenus
	case key.Matches(msg, k.retry):
		return control.ActionRetry
	default:
		return control.ActionNone
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch {
	case k.state == jumpState:
		return to2(h(k.confirm, k.back))
	case k.menuOpen:
		return to2(h(k.up, k.down, withDescription(k.confirm, "select"), k.back))
	default:
		return h(k.playPause, k.seekBackward, k.seekForward, k.mute, k.showHelp, k.quit),
			h(
				k.playPause, k.seekBackward, k.seekForward, k.jumpBackward, k.jumpForward,
				k.volumeUp, k.volumeDown, k.mute,
				k.fullscreen, k.theater, k.pip,
				k.restart, k.rateMenu, k.qualityMenu, k.jump, k.retry,
				k.showHelp, k.quit,
			)
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:   k.up,
		CursorDown: k.down,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
