package control

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler arranges for f to run after d on some other goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules with the runtime timer.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type idleExpired struct {
	generation uint64
}

// idleTimer keeps at most one pending hide. Each arm bumps the generation so a
// fire that raced with a re-arm or a stop is recognised as stale.
type idleTimer struct {
	scheduler Scheduler
	post      func(any)

	timer      Timer
	generation uint64
	stopped    bool
}

func newIdleTimer(scheduler Scheduler, post func(any)) *idleTimer {
	if post == nil {
		post = func(any) {}
	}

	return &idleTimer{
		scheduler: scheduler,
		post:      post,
	}
}

func (t *idleTimer) arm(d time.Duration) {
	if t.stopped {
		return
	}

	if t.timer != nil {
		t.timer.Stop()
	}

	t.generation++
	generation := t.generation
	post := t.post

	t.timer = t.scheduler.AfterFunc(d, func() {
		post(idleExpired{generation: generation})
	})
}

func (t *idleTimer) current(msg idleExpired) bool {
	return !t.stopped && msg.generation == t.generation
}

func (t *idleTimer) stop() {
	t.stopped = true
	t.generation++

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (p *Player) armIdle(d time.Duration) {
	if p.closed {
		return
	}
	p.idle.arm(d)
}

func (p *Player) idleExpired(msg idleExpired) {
	if !p.idle.current(msg) {
		return
	}

	s := &p.state
	if s.IsPlaying && !s.IsSeeking && !s.MenuOpen() && !s.HoverControls {
		s.ShowControls = false
	}
}
