package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeremyfitness/fitplayer/internal/ui"
	"github.com/jeremyfitness/fitplayer/timefmt"
)

// waitForEvent blocks until the player posts something or the screen unmounts.
func (b *statefulBubble) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return playerMsg{msg: msg}
		case <-b.done:
			return nil
		}
	}
}

// waitForEngineExit quits once the mpv window is closed from outside.
func (b *statefulBubble) waitForEngineExit() tea.Cmd {
	if b.exited == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case <-b.exited:
			return engineExitedMsg{}
		case <-b.done:
			return nil
		}
	}
}

func (b *statefulBubble) quit() (tea.Model, tea.Cmd) {
	b.unmount()
	return b, tea.Quit
}

func (b *statefulBubble) openJump() tea.Cmd {
	b.inputC.SetValue("")
	b.setState(jumpState)
	return b.inputC.Focus()
}

func (b *statefulBubble) closeJump() {
	b.inputC.Blur()
	b.setState(playerState)
}

// commitJump seeks to the timestamp typed into the prompt.
func (b *statefulBubble) commitJump() tea.Cmd {
	defer b.closeJump()

	seconds, err := timefmt.Parse(b.inputC.Value())
	if err != nil {
		return ui.Notify(err.Error())
	}

	duration := b.player.State().Duration
	if duration <= 0 {
		return ui.Notify("Duration not known yet")
	}

	b.player.SeekTo(seconds / duration)
	b.player.Interact()
	return ui.Notify(fmt.Sprintf("Jumped to %s", timefmt.FormatLong(seconds)))
}

func (b *statefulBubble) selectRate() tea.Cmd {
	item, ok := b.rateC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	rate := item.internal.(float64)
	b.player.SetPlaybackRate(rate)
	return ui.Notify("Speed " + formatRate(rate))
}

func (b *statefulBubble) selectQuality() tea.Cmd {
	item, ok := b.qualityC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	quality := item.internal.(string)
	b.player.SetQuality(quality)
	return ui.Notify("Quality " + quality)
}
