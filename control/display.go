package control

import "github.com/jeremyfitness/fitplayer/log"

// ToggleFullscreen asks the engine to flip fullscreen. IsFullscreen only
// changes when the engine reports the new mode back.
func (p *Player) ToggleFullscreen() {
	if !p.attached() {
		return
	}

	if err := p.engine.SetFullscreen(!p.state.IsFullscreen); err != nil {
		log.Warnf("fullscreen request failed: %v", err)
	}
}

// TogglePiP asks the engine to enter or leave picture-in-picture.
func (p *Player) TogglePiP() {
	if !p.attached() {
		return
	}

	if err := p.engine.SetPictureInPicture(!p.state.IsPiP); err != nil {
		log.Warnf("picture-in-picture request failed: %v", err)
	}
}

// ToggleTheater flips the wide layout. It is purely local.
func (p *Player) ToggleTheater() {
	if p.closed {
		return
	}

	p.state.IsTheater = !p.state.IsTheater
}
