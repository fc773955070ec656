package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeremyfitness/fitplayer/control"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case playerMsg:
		b.player.Handle(msg.msg)
		b.keymap.menuOpen = b.player.State().MenuOpen()
		return b, tea.Batch(cmd, b.waitForEvent())
	case engineExitedMsg:
		return b.quit()
	case spinner.TickMsg:
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.FocusMsg:
		b.player.Interact()
	case tea.BlurMsg:
		b.player.PointerLeave()
	case tea.MouseMsg:
		b.handleMouse(msg)
		b.keymap.menuOpen = b.player.State().MenuOpen()
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b.quit()
		}

		var keyCmd tea.Cmd
		switch b.state {
		case jumpState:
			keyCmd = b.updateJump(msg)
		default:
			var quit bool
			keyCmd, quit = b.updatePlayer(msg)
			if quit {
				return b.quit()
			}
		}

		b.keymap.menuOpen = b.player.State().MenuOpen()
		return b, tea.Batch(cmd, keyCmd)
	}

	return b, cmd
}

func (b *statefulBubble) updateJump(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.confirm):
		return b.commitJump()
	case key.Matches(msg, b.keymap.back):
		b.closeJump()
		return nil
	}

	// the prompt owns the keyboard, shortcuts stay inert
	b.player.Perform(b.keymap.action(msg), true)

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updatePlayer(msg tea.KeyMsg) (cmd tea.Cmd, quit bool) {
	s := b.player.State()

	if s.MenuOpen() {
		if cmd, ok := b.updateMenu(msg, s); ok {
			return cmd, false
		}
	}

	switch {
	case key.Matches(msg, b.keymap.quit):
		return nil, true
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil, false
	case key.Matches(msg, b.keymap.jump):
		return b.openJump(), false
	}

	action := b.keymap.action(msg)
	b.player.Perform(action, false)

	if action == control.ActionRateMenu || action == control.ActionQualityMenu {
		b.markSelected()
	}

	return nil, false
}

// updateMenu routes navigation to the open menu. It reports false for keys the menu does not own.
func (b *statefulBubble) updateMenu(msg tea.KeyMsg, s control.State) (tea.Cmd, bool) {
	active := &b.rateC
	if s.QualityMenuOpen {
		active = &b.qualityC
	}

	switch {
	case key.Matches(msg, b.keymap.confirm):
		if s.QualityMenuOpen {
			return b.selectQuality(), true
		}
		return b.selectRate(), true
	case key.Matches(msg, b.keymap.up, b.keymap.down):
		var cmd tea.Cmd
		*active, cmd = active.Update(msg)
		b.player.Interact()
		return cmd, true
	}

	return nil, false
}
