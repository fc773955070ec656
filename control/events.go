package control

import (
	"github.com/jeremyfitness/fitplayer/engine"
	"github.com/jeremyfitness/fitplayer/log"
	"github.com/samber/lo"
)

func (p *Player) apply(ev engine.Event) {
	s := &p.state
	log.Debugf("engine event %s", ev.Kind)

	switch ev.Kind {
	case engine.Ready:
		p.ready = true
		s.IsLoading = false
	case engine.Play:
		if !s.IsPlaying {
			p.armIdle(p.opts.IdleDelay)
		}
		s.IsPlaying = true
		s.HasStarted = true
		s.IsLoading = false
	case engine.Pause:
		s.IsPlaying = false
	case engine.Progress:
		// the drag owns the position until it ends
		if s.IsSeeking {
			return
		}

		s.Played = lo.Clamp(ev.Played, 0, 1)
		s.Buffered = lo.Clamp(ev.Loaded, 0, 1)

		if hook := p.opts.Hooks.OnProgress; hook != nil {
			hook(s.Played, ev.PlayedSeconds)
		}
	case engine.Duration:
		s.Duration = ev.Duration

		if p.resumePending && s.Duration > 0 {
			p.resumePending = false
			p.SeekTo(p.opts.StartAt)
		}
	case engine.Buffer:
		s.IsLoading = true
	case engine.BufferEnd:
		s.IsLoading = false
	case engine.Error:
		log.Errorf("playback: %v", ev.Err)
		s.HasError = true
		s.Err = ev.Err

		if hook := p.opts.Hooks.OnError; hook != nil {
			hook(ev.Err)
		}
	case engine.Ended:
		if !p.opts.Loop {
			s.IsPlaying = false
		}
		s.ShowControls = true

		if hook := p.opts.Hooks.OnEnded; hook != nil {
			hook(p.state)
		}
	case engine.FullscreenChanged:
		s.IsFullscreen = ev.On
	case engine.PiPChanged:
		s.IsPiP = ev.On
	}
}
