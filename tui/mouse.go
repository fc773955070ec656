package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse maps terminal mouse reports onto the player's pointer model.
// A press on the progress bar starts a drag that follows the pointer on any
// row until the button is released.
func (b *statefulBubble) handleMouse(msg tea.MouseMsg) {
	bar := b.barRow()
	left, width := float64(b.barLeft()), float64(b.contentWidth())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}

		switch msg.Y {
		case bar:
			b.mouseDown = true
			b.player.DragStart(float64(msg.X), left, width)
		case bar + 1:
			if b.player.State().ShowControls {
				b.player.Perform(b.buttonAt(msg.X), b.state == jumpState)
				if b.player.State().MenuOpen() {
					b.markSelected()
				}
			}
		}

		b.player.Interact()
	case tea.MouseActionMotion:
		if b.mouseDown {
			b.player.DragMove(float64(msg.X), left, width)
			return
		}

		b.player.SetHoverControls(msg.Y == bar || msg.Y == bar+1)
	case tea.MouseActionRelease:
		if b.mouseDown {
			b.mouseDown = false
			b.player.DragEnd()
		}
	}
}
