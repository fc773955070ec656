package control

import "math"

// Action is a keyboard shortcut resolved by the UI layer.
type Action int

const (
	ActionNone Action = iota
	ActionPlayPause
	ActionSeekBackward
	ActionSeekForward
	ActionJumpBackward
	ActionJumpForward
	ActionVolumeUp
	ActionVolumeDown
	ActionMute
	ActionFullscreen
	ActionTheater
	ActionPiP
	ActionRestart
	ActionRateMenu
	ActionQualityMenu
	ActionCloseMenus
	ActionRetry
)

// Perform runs a shortcut. Shortcuts are swallowed while a text field has focus.
// It reports whether the action was handled.
func (p *Player) Perform(a Action, textFocused bool) bool {
	if p.closed || textFocused || a == ActionNone {
		return false
	}

	switch a {
	case ActionPlayPause:
		p.TogglePlayPause()
	case ActionSeekBackward:
		p.Skip(-p.opts.KeyboardSeek)
	case ActionSeekForward:
		p.Skip(p.opts.KeyboardSeek)
	case ActionJumpBackward:
		p.Skip(-p.opts.ButtonSeek)
	case ActionJumpForward:
		p.Skip(p.opts.ButtonSeek)
	case ActionVolumeUp:
		p.SetVolume(p.state.Volume + p.opts.VolumeStep)
	case ActionVolumeDown:
		p.SetVolume(p.state.Volume - p.opts.VolumeStep)
	case ActionMute:
		p.ToggleMute()
	case ActionFullscreen:
		p.ToggleFullscreen()
	case ActionTheater:
		p.ToggleTheater()
	case ActionPiP:
		p.TogglePiP()
	case ActionRestart:
		p.Restart()
	case ActionRateMenu:
		p.ToggleRateMenu()
	case ActionQualityMenu:
		p.ToggleQualityMenu()
	case ActionCloseMenus:
		p.CloseMenus()
	case ActionRetry:
		if !p.state.HasError {
			return false
		}
		p.Retry()
	default:
		return false
	}

	p.Interact()
	return true
}

// Interact shows the controls and restarts the idle countdown.
func (p *Player) Interact() {
	if p.closed {
		return
	}

	p.state.ShowControls = true
	p.armIdle(p.opts.IdleDelay)
}

// PointerLeave starts the shorter countdown used once the pointer has left the surface.
func (p *Player) PointerLeave() {
	if p.closed {
		return
	}

	p.state.HoverControls = false
	p.armIdle(p.opts.LeaveDelay)
}

// SetHoverControls records whether the pointer rests on the controls row.
func (p *Player) SetHoverControls(hover bool) {
	if p.closed {
		return
	}

	p.state.HoverControls = hover
	p.Interact()
}

// fraction resolves x on a bar spanning [left, left+width). ok is false when
// the coordinates do not yield a finite position.
func fraction(x, left, width float64) (f float64, ok bool) {
	if !(width > 0) || math.IsInf(width, 0) {
		return 0, false
	}

	f = (x - left) / width
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// DragStart begins scrubbing at x on a bar spanning [left, left+width).
// Coordinates that cannot be resolved are ignored.
func (p *Player) DragStart(x, left, width float64) {
	f, ok := fraction(x, left, width)
	if !ok || !p.canSeek() {
		return
	}

	p.state.IsSeeking = true
	p.SeekTo(f)
	p.Interact()
}

// DragMove keeps seeking while a drag is in progress.
func (p *Player) DragMove(x, left, width float64) {
	f, ok := fraction(x, left, width)
	if !ok || !p.state.IsSeeking {
		return
	}

	p.SeekTo(f)
}

// DragEnd releases the position back to the engine's progress reports.
func (p *Player) DragEnd() {
	if p.closed || !p.state.IsSeeking {
		return
	}

	p.state.IsSeeking = false
	p.Interact()
}
