// Package control implements the playback control surface: the state store,
// the input coordinator and the display-mode coordinator sitting between a UI
// and an engine.Engine.
//
// A Player is confined to a single goroutine. Anything asynchronous (engine
// events, idle timer fires) is handed to the post function given to New and
// must come back to the owning goroutine through Player.Handle.
package control

import (
	"time"

	"github.com/samber/mo"
)

// Hooks lets the host observe playback without reaching into the surface.
type Hooks struct {
	OnEnded    func(State)
	OnError    func(error)
	OnProgress func(played, seconds float64)
}

// Options is the mount configuration. Autoplay, Muted and Loop only seed the initial state.
type Options struct {
	URL       string
	Title     mo.Option[string]
	Thumbnail mo.Option[string]

	Autoplay bool
	Muted    bool
	Loop     bool

	QualityOptions []string
	DefaultQuality string
	PlaybackRates  []float64

	// StartAt is a fraction to seek to once the duration is known. Zero disables it.
	StartAt float64

	IdleDelay  time.Duration
	LeaveDelay time.Duration

	KeyboardSeek float64
	ButtonSeek   float64
	VolumeStep   float64

	Hooks Hooks
}

// DefaultOptions returns the options used when the host leaves fields unset.
func DefaultOptions() Options {
	return Options{
		QualityOptions: []string{"auto"},
		PlaybackRates:  []float64{0.5, 0.75, 1, 1.25, 1.5, 2},
		IdleDelay:      3000 * time.Millisecond,
		LeaveDelay:     1500 * time.Millisecond,
		KeyboardSeek:   5,
		ButtonSeek:     10,
		VolumeStep:     0.1,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()

	if len(o.QualityOptions) == 0 {
		o.QualityOptions = d.QualityOptions
	}
	if len(o.PlaybackRates) == 0 {
		o.PlaybackRates = d.PlaybackRates
	}
	if o.IdleDelay <= 0 {
		o.IdleDelay = d.IdleDelay
	}
	if o.LeaveDelay <= 0 {
		o.LeaveDelay = d.LeaveDelay
	}
	if o.KeyboardSeek <= 0 {
		o.KeyboardSeek = d.KeyboardSeek
	}
	if o.ButtonSeek <= 0 {
		o.ButtonSeek = d.ButtonSeek
	}
	if o.VolumeStep <= 0 || o.VolumeStep > 1 {
		o.VolumeStep = d.VolumeStep
	}

	return o
}
