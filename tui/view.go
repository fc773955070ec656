package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeremyfitness/fitplayer/control"
	"github.com/jeremyfitness/fitplayer/icon"
	"github.com/jeremyfitness/fitplayer/style"
	"github.com/jeremyfitness/fitplayer/timefmt"
	"github.com/muesli/reflow/wrap"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	theaterStyle = lipgloss.NewStyle()
)

const buttonGap = "  "

// button is one clickable segment of the controls row.
type button struct {
	label  string
	action control.Action
}

func (b *statefulBubble) frame() lipgloss.Style {
	if b.player.State().IsTheater {
		return theaterStyle
	}
	return paddingStyle
}

func (b *statefulBubble) contentWidth() int {
	x, _ := b.frame().GetFrameSize()
	return max(b.width-x, 10)
}

// barRow is the terminal row of the progress bar; the controls row follows it.
func (b *statefulBubble) barRow() int {
	return b.frame().GetPaddingTop() + len(b.headerLines()) + len(b.screenLines())
}

func (b *statefulBubble) barLeft() int {
	return b.frame().GetPaddingLeft()
}

func (b *statefulBubble) View() string {
	s := b.player.State()

	lines := append(b.headerLines(), b.screenLines()...)
	lines = append(lines, renderProgressBar(b.contentWidth(), s.Played, s.Buffered))

	if s.ShowControls {
		lines = append(lines, b.controlsRow())
	}

	switch {
	case s.RateMenuOpen:
		lines = append(lines, "", b.rateC.View())
	case s.QualityMenuOpen:
		lines = append(lines, "", b.qualityC.View())
	}

	if b.state == jumpState {
		lines = append(lines, "", b.inputC.View())
	}

	return b.notifier.View(b.renderLines(s.ShowControls, lines))
}

func (b *statefulBubble) headerLines() []string {
	opts := b.player.Options()
	title := opts.Title.OrElse(opts.URL)

	return []string{
		style.Truncate(b.contentWidth())(style.Title(title)),
		"",
	}
}

func (b *statefulBubble) screenLines() []string {
	s := b.player.State()
	width := b.contentWidth()

	switch {
	case s.HasError:
		return b.viewError(s)
	case !s.HasStarted:
		return b.viewPoster(s)
	case s.IsLoading:
		return []string{b.spinnerC.View() + " Buffering", ""}
	default:
		return []string{style.Truncate(width)(b.viewStatus(s)), ""}
	}
}

func (b *statefulBubble) viewPoster(s control.State) []string {
	opts := b.player.Options()

	lines := []string{
		style.Fg(style.AccentColor)(icon.Get(icon.Play)) + " Press space to start",
	}

	if thumbnail, ok := opts.Thumbnail.Get(); ok {
		lines = append(lines, style.Truncate(b.contentWidth())(style.Faint("Poster: "+thumbnail)))
	}

	if s.IsLoading {
		lines = append(lines, b.spinnerC.View()+" Loading")
	}

	return append(lines, "")
}

func (b *statefulBubble) viewError(s control.State) []string {
	message := "The video could not be played."
	if s.Err != nil {
		message = s.Err.Error()
	}

	body := lipgloss.NewStyle().Foreground(style.ErrorColor).Render(message)

	return []string{
		style.ErrorTitle("Playback failed"),
		"",
		icon.Get(icon.Fail) + " " + wrap.String(body, b.contentWidth()-2),
		style.Faint("Press r to retry"),
		"",
	}
}

func (b *statefulBubble) viewStatus(s control.State) string {
	var parts []string

	if s.IsPlaying {
		parts = append(parts, icon.Get(icon.Play)+" Playing")
	} else {
		parts = append(parts, icon.Get(icon.Pause)+" Paused")
	}

	if s.PlaybackRate != 1 {
		parts = append(parts, style.Tag(style.Base, style.Peach)(formatRate(s.PlaybackRate)))
	}
	if s.SelectedQuality != "" {
		parts = append(parts, style.Tag(style.Base, style.Lavender)(s.SelectedQuality))
	}
	if s.IsTheater {
		parts = append(parts, style.Faint("theater"))
	}

	return strings.Join(parts, " ")
}

// volumeMeter renders the level as five cells.
func volumeMeter(s control.State) string {
	const cells = 5
	filled := int(s.EffectiveVolume()*cells + 0.5)

	return style.Fg(style.AccentColor)(strings.Repeat("▮", filled)) +
		style.Fg(style.FaintColor)(strings.Repeat("▯", cells-filled))
}

func (b *statefulBubble) buttons() []button {
	s := b.player.State()
	opts := b.player.Options()

	toggle := func(i icon.Icon, on bool) string {
		if on {
			return style.Fg(style.AccentColor)(icon.Get(i))
		}
		return icon.Get(i)
	}

	playPause := icon.Get(icon.Play)
	if s.IsPlaying {
		playPause = icon.Get(icon.Pause)
	}

	volume := icon.Get(icon.VolumeHigh)
	switch {
	case s.IsMuted:
		volume = icon.Get(icon.Muted)
	case s.Volume < 0.5:
		volume = icon.Get(icon.VolumeLow)
	}

	return []button{
		{label: fmt.Sprintf("%s %.0f", icon.Get(icon.SkipBack), opts.ButtonSeek), action: control.ActionJumpBackward},
		{label: playPause, action: control.ActionPlayPause},
		{label: fmt.Sprintf("%.0f %s", opts.ButtonSeek, icon.Get(icon.SkipForward)), action: control.ActionJumpForward},
		{label: volume + " " + volumeMeter(s), action: control.ActionMute},
		{label: toggle(icon.Settings, s.RateMenuOpen) + " " + formatRate(s.PlaybackRate), action: control.ActionRateMenu},
		{label: toggle(icon.Progress, s.QualityMenuOpen) + " " + s.SelectedQuality, action: control.ActionQualityMenu},
		{label: toggle(icon.PiP, s.IsPiP), action: control.ActionPiP},
		{label: toggle(icon.Theater, s.IsTheater), action: control.ActionTheater},
		{label: toggle(icon.Fullscreen, s.IsFullscreen), action: control.ActionFullscreen},
	}
}

func timeLabel(s control.State) string {
	format := timefmt.FormatShort
	if s.Duration >= 3600 {
		format = timefmt.FormatLong
	}

	return format(s.CurrentTime()) + " / " + format(s.Duration)
}

func (b *statefulBubble) controlsRow() string {
	labels := make([]string, 0)
	for _, btn := range b.buttons() {
		labels = append(labels, btn.label)
	}

	row := strings.Join(labels, buttonGap) + buttonGap + style.Faint(timeLabel(b.player.State()))
	return style.Truncate(b.contentWidth())(row)
}

// buttonAt returns the action of the button covering column x of the controls row.
func (b *statefulBubble) buttonAt(x int) control.Action {
	x -= b.barLeft()
	if x < 0 {
		return control.ActionNone
	}

	gap := lipgloss.Width(buttonGap)
	start := 0
	for _, btn := range b.buttons() {
		end := start + lipgloss.Width(btn.label)
		if x >= start && x < end {
			return btn.action
		}
		start = end + gap
	}

	return control.ActionNone
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		_, y := b.frame().GetFrameSize()
		if free := b.height - y - h - 1; free > 0 {
			l += strings.Repeat("\n", free)
		}
		l += "\n" + b.helpC.View(b.keymap)
	}

	return b.frame().Render(l)
}
