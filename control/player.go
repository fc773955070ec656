package control

import (
	"math"

	"github.com/jeremyfitness/fitplayer/engine"
	"github.com/jeremyfitness/fitplayer/log"
	"github.com/samber/lo"
)

// EngineEvent carries an engine notification back to the owning goroutine.
type EngineEvent struct {
	Event engine.Event
}

// Player holds the state of one mounted control surface and applies every transition to it.
type Player struct {
	opts  Options
	state State

	engine      engine.Engine
	unsubscribe func()
	post        func(any)

	idle *idleTimer

	ready         bool
	resumePending bool
	closed        bool
}

// New mounts a player. post must be safe to call from any goroutine; whatever
// it receives has to be passed back to Handle on the player's goroutine.
func New(opts Options, scheduler Scheduler, post func(any)) *Player {
	opts = opts.withDefaults()
	if scheduler == nil {
		scheduler = RealScheduler{}
	}

	p := &Player{
		opts:          opts,
		state:         newState(opts),
		post:          post,
		resumePending: opts.StartAt > 0,
	}
	p.idle = newIdleTimer(scheduler, post)

	return p
}

// State returns a copy of the current state.
func (p *Player) State() State {
	return p.state
}

// Options returns the effective mount options.
func (p *Player) Options() Options {
	return p.opts
}

// Attach binds the engine, pushes the seeded state to it and loads the media.
func (p *Player) Attach(e engine.Engine) error {
	if p.closed || e == nil {
		return nil
	}

	p.engine = e
	p.unsubscribe = e.Subscribe(func(ev engine.Event) {
		p.post(EngineEvent{Event: ev})
	})

	p.command("volume", e.SetVolume(p.state.Volume))
	p.command("mute", e.SetMuted(p.state.IsMuted))
	p.command("loop", e.SetLoop(p.opts.Loop))
	p.command("rate", e.SetPlaybackRate(p.state.PlaybackRate))
	p.command("playing", e.SetPlaying(p.state.IsPlaying))

	p.state.IsLoading = true
	p.armIdle(p.opts.IdleDelay)

	return e.Load(p.opts.URL)
}

// Close unmounts the player: the engine subscription is dropped, the idle
// timer is cancelled and every later call becomes a no-op.
func (p *Player) Close() {
	if p.closed {
		return
	}
	p.closed = true

	if p.unsubscribe != nil {
		p.unsubscribe()
	}
	p.idle.stop()
}

// Closed reports whether Close was called.
func (p *Player) Closed() bool {
	return p.closed
}

// Handle applies a message produced by post. It reports whether the message belonged to this player.
func (p *Player) Handle(msg any) bool {
	if p.closed {
		return false
	}

	switch msg := msg.(type) {
	case EngineEvent:
		p.apply(msg.Event)
		return true
	case idleExpired:
		p.idleExpired(msg)
		return true
	default:
		return false
	}
}

func (p *Player) attached() bool {
	return p.engine != nil && !p.closed
}

// command logs a failed engine request. Engine failures never alter local state.
func (p *Player) command(what string, err error) {
	if err != nil {
		log.With(log.Fields{"command": what}).Warnf("engine request failed: %v", err)
	}
}

// TogglePlayPause flips the intended playback state and resets the idle timer.
func (p *Player) TogglePlayPause() {
	if p.closed {
		return
	}

	p.state.IsPlaying = !p.state.IsPlaying
	if p.attached() {
		p.command("playing", p.engine.SetPlaying(p.state.IsPlaying))
	}
	p.Interact()
}

// SetVolume sets the level and mutes exactly when it is zero.
func (p *Player) SetVolume(v float64) {
	if p.closed {
		return
	}

	v = lo.Clamp(v, 0, 1)
	p.state.Volume = v
	p.state.IsMuted = v == 0

	if p.attached() {
		p.command("volume", p.engine.SetVolume(v))
		p.command("mute", p.engine.SetMuted(p.state.IsMuted))
	}
}

// ToggleMute mutes while remembering the level, or restores it (falling back to full volume).
func (p *Player) ToggleMute() {
	if p.closed {
		return
	}

	if p.state.IsMuted {
		restored := p.state.PreviousVolume
		if restored <= 0 {
			restored = 1
		}
		p.state.Volume = restored
		p.state.IsMuted = false
	} else {
		p.state.PreviousVolume = p.state.Volume
		p.state.IsMuted = true
	}

	if p.attached() {
		p.command("volume", p.engine.SetVolume(p.state.Volume))
		p.command("mute", p.engine.SetMuted(p.state.IsMuted))
	}
}

// canSeek is false during the transient load phase; seeks are dropped silently then.
func (p *Player) canSeek() bool {
	return p.attached() && p.state.Duration > 0
}

// SeekTo clamps fraction into [0,1], stores it and seeks the engine. NaN is ignored.
func (p *Player) SeekTo(fraction float64) {
	if !p.canSeek() || math.IsNaN(fraction) {
		return
	}

	fraction = lo.Clamp(fraction, 0, 1)
	p.state.Played = fraction
	p.command("seek", p.engine.SeekTo(fraction))
}

// Skip moves the position by delta seconds, clamped to the media bounds.
func (p *Player) Skip(delta float64) {
	if !p.canSeek() {
		return
	}

	target := lo.Clamp(p.state.CurrentTime()+delta, 0, p.state.Duration)
	p.SeekTo(target / p.state.Duration)
}

// Restart seeks back to the beginning.
func (p *Player) Restart() {
	p.SeekTo(0)
}

// SetPlaybackRate applies rate and closes the settings menus.
func (p *Player) SetPlaybackRate(rate float64) {
	if p.closed || rate <= 0 {
		return
	}

	p.state.PlaybackRate = rate
	p.CloseMenus()

	if p.attached() {
		p.command("rate", p.engine.SetPlaybackRate(rate))
	}
}

// SetQuality selects one of the configured labels and closes the settings menus.
func (p *Player) SetQuality(quality string) {
	if p.closed || !lo.Contains(p.opts.QualityOptions, quality) {
		return
	}

	p.state.SelectedQuality = quality
	p.CloseMenus()
	log.Infof("quality set to %s", quality)
}

// Retry clears the error optimistically. A file that never loaded is loaded
// again; otherwise playback restarts from the beginning. A genuinely broken
// source simply errors again.
func (p *Player) Retry() {
	if p.closed {
		return
	}

	p.state.HasError = false
	p.state.Err = nil

	if !p.attached() {
		return
	}

	if !p.ready {
		p.state.IsLoading = true
		p.command("load", p.engine.Load(p.opts.URL))
		return
	}

	p.Restart()
}
