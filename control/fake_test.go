package control

import (
	"errors"
	"time"

	"github.com/jeremyfitness/fitplayer/engine"
)

var errDisplay = errors.New("display mode not permitted")

type fakeEngine struct {
	loaded     []string
	seeks      []float64
	playing    []bool
	volumes    []float64
	muted      []bool
	rates      []float64
	fullscreen []bool
	pip        []bool

	failDisplay bool

	listeners    map[int]engine.Listener
	next         int
	unsubscribed int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{listeners: make(map[int]engine.Listener)}
}

func (f *fakeEngine) Load(url string) error {
	f.loaded = append(f.loaded, url)
	return nil
}

func (f *fakeEngine) SeekTo(fraction float64) error {
	f.seeks = append(f.seeks, fraction)
	return nil
}

func (f *fakeEngine) SetPlaying(playing bool) error {
	f.playing = append(f.playing, playing)
	return nil
}

func (f *fakeEngine) SetMuted(muted bool) error {
	f.muted = append(f.muted, muted)
	return nil
}

func (f *fakeEngine) SetVolume(volume float64) error {
	f.volumes = append(f.volumes, volume)
	return nil
}

func (f *fakeEngine) SetLoop(bool) error { return nil }

func (f *fakeEngine) SetPlaybackRate(rate float64) error {
	f.rates = append(f.rates, rate)
	return nil
}

func (f *fakeEngine) SetFullscreen(on bool) error {
	if f.failDisplay {
		return errDisplay
	}
	f.fullscreen = append(f.fullscreen, on)
	return nil
}

func (f *fakeEngine) SetPictureInPicture(on bool) error {
	if f.failDisplay {
		return errDisplay
	}
	f.pip = append(f.pip, on)
	return nil
}

func (f *fakeEngine) Subscribe(l engine.Listener) func() {
	id := f.next
	f.next++
	f.listeners[id] = l

	return func() {
		if _, ok := f.listeners[id]; ok {
			delete(f.listeners, id)
			f.unsubscribed++
		}
	}
}

func (f *fakeEngine) Close() error { return nil }

func (f *fakeEngine) emit(ev engine.Event) {
	for _, l := range f.listeners {
		l(ev)
	}
}

type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) last() *fakeTimer {
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

// fire runs a timer even if it was stopped, as a timer racing with Stop would.
func (t *fakeTimer) fire() {
	t.f()
}

// harness wires a player to fakes and routes posted messages straight back to Handle.
type harness struct {
	player    *Player
	engine    *fakeEngine
	scheduler *fakeScheduler
	posted    []any
}

func newHarness(opts Options) *harness {
	h := &harness{engine: newFakeEngine(), scheduler: &fakeScheduler{}}
	h.player = New(opts, h.scheduler, func(msg any) {
		h.posted = append(h.posted, msg)
		h.player.Handle(msg)
	})
	_ = h.player.Attach(h.engine)
	return h
}

// loaded makes the engine report a ready file of the given length.
func (h *harness) loaded(duration float64) {
	h.engine.emit(engine.Event{Kind: engine.Ready})
	h.engine.emit(engine.Event{Kind: engine.Duration, Duration: duration})
}
