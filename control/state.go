package control

// State is the PlayerState of one mounted player.
type State struct {
	IsPlaying bool

	Volume         float64
	IsMuted        bool
	PreviousVolume float64

	Played   float64
	Duration float64
	Buffered float64

	IsSeeking bool
	IsLoading bool
	HasError  bool
	Err       error

	// HasStarted turns true on the first Play event; the poster is shown until then.
	HasStarted bool

	PlaybackRate    float64
	SelectedQuality string

	ShowControls  bool
	HoverControls bool
	IsFullscreen  bool
	IsPiP         bool
	IsTheater     bool

	RateMenuOpen    bool
	QualityMenuOpen bool
}

func newState(opts Options) State {
	return State{
		IsPlaying:       opts.Autoplay,
		Volume:          1,
		IsMuted:         opts.Muted,
		PreviousVolume:  1,
		PlaybackRate:    1,
		SelectedQuality: MatchQuality(opts.QualityOptions, opts.DefaultQuality),
		ShowControls:    true,
	}
}

// EffectiveVolume is the audible level: zero while muted regardless of Volume.
func (s State) EffectiveVolume() float64 {
	if s.IsMuted {
		return 0
	}
	return s.Volume
}

// CurrentTime is the playback position in seconds.
func (s State) CurrentTime() float64 {
	return s.Played * s.Duration
}

// MenuOpen reports whether any settings popover is showing.
func (s State) MenuOpen() bool {
	return s.RateMenuOpen || s.QualityMenuOpen
}
