// Package engine defines the media primitive the control surface drives and its mpv implementation.
//
// Commands are fire-and-forget: implementations queue them in order and report
// asynchronous failures through logging, never through the caller. State flows
// back exclusively as Events delivered to subscribers.
package engine

import "errors"

var (
	// ErrNotRunning is returned when a command is issued before the primitive has started.
	ErrNotRunning = errors.New("media engine is not running")

	// ErrClosed is returned when a command is issued after Close.
	ErrClosed = errors.New("media engine is closed")
)

// Engine is the opaque video decode/render unit wrapped by the control surface.
type Engine interface {
	// Load replaces the current media with url.
	Load(url string) error

	// SeekTo moves playback to fraction of the duration, 0 to 1.
	SeekTo(fraction float64) error

	SetPlaying(playing bool) error
	SetMuted(muted bool) error

	// SetVolume takes a level between 0 and 1.
	SetVolume(volume float64) error
	SetLoop(loop bool) error
	SetPlaybackRate(rate float64) error

	// SetFullscreen requests a platform display-mode change. The outcome arrives as FullscreenChanged.
	SetFullscreen(on bool) error

	// SetPictureInPicture requests a floating window. The outcome arrives as PiPChanged.
	SetPictureInPicture(on bool) error

	// Subscribe registers l for every event until the returned function is called.
	Subscribe(l Listener) (unsubscribe func())

	// Close terminates the primitive and releases all associated resources.
	Close() error
}

// Listener receives engine events. It is invoked from the engine's reader goroutine.
type Listener func(Event)
