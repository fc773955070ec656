package engine

// EventKind enumerates the notifications emitted by an Engine.
type EventKind int

const (
	Ready EventKind = iota
	Play
	Pause
	Progress
	Duration
	Buffer
	BufferEnd
	Error
	Ended
	FullscreenChanged
	PiPChanged
)

func (k EventKind) String() string {
	switch k {
	case Ready:
		return "ready"
	case Play:
		return "play"
	case Pause:
		return "pause"
	case Progress:
		return "progress"
	case Duration:
		return "duration"
	case Buffer:
		return "buffer"
	case BufferEnd:
		return "buffer-end"
	case Error:
		return "error"
	case Ended:
		return "ended"
	case FullscreenChanged:
		return "fullscreen-changed"
	case PiPChanged:
		return "pip-changed"
	default:
		return "unknown"
	}
}

// Event is a single state patch. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Progress
	Played        float64
	PlayedSeconds float64
	Loaded        float64

	// Duration, in seconds
	Duration float64

	// FullscreenChanged, PiPChanged
	On bool

	// Error
	Err error
}
