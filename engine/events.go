package engine

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/jeremyfitness/fitplayer/log"
	"github.com/samber/lo"
)

// observed lists the mpv properties mirrored into Events. Observations are
// bound to the connection that registers them.
var observed = []string{
	"time-pos",
	"duration",
	"pause",
	"demuxer-cache-time",
	"paused-for-cache",
	"eof-reached",
	"fullscreen",
	"ontop",
}

// rawEvent is one line of mpv's event stream.
type rawEvent struct {
	Event     string          `json:"event"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	Reason    string          `json:"reason"`
	FileError string          `json:"file_error"`
}

// translator turns mpv's property stream into Events. Progress needs the
// last known duration and cache extent, so it keeps them between lines.
type translator struct {
	position float64
	duration float64
	cached   float64
}

func (t *translator) progress() Event {
	return Event{
		Kind:          Progress,
		Played:        lo.Clamp(t.position/t.duration, 0, 1),
		PlayedSeconds: t.position,
		Loaded:        lo.Clamp(t.cached/t.duration, 0, 1),
	}
}

func (t *translator) translate(line []byte) []Event {
	var raw rawEvent
	if err := json.Unmarshal(line, &raw); err != nil || raw.Event == "" {
		return nil
	}

	switch raw.Event {
	case "start-file":
		t.position, t.duration, t.cached = 0, 0, 0
		return []Event{{Kind: Buffer}}
	case "file-loaded":
		return []Event{{Kind: Ready}}
	case "end-file":
		if raw.Reason == "error" {
			msg := raw.FileError
			if msg == "" {
				msg = "unknown error"
			}
			return []Event{{Kind: Error, Err: fmt.Errorf("playback failed: %s", msg)}}
		}
		return nil
	case "property-change":
		return t.property(raw.Name, raw.Data)
	default:
		return nil
	}
}

func (t *translator) property(name string, data json.RawMessage) []Event {
	// mpv reports null for properties that are unavailable, e.g. before a file loads.
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var (
		number float64
		flag   bool
	)

	switch name {
	case "time-pos":
		if json.Unmarshal(data, &number) != nil {
			return nil
		}
		t.position = number
		if t.duration <= 0 {
			return nil
		}
		return []Event{t.progress()}
	case "duration":
		if json.Unmarshal(data, &number) != nil || number <= 0 {
			return nil
		}
		t.duration = number
		return []Event{{Kind: Duration, Duration: number}}
	case "demuxer-cache-time":
		if json.Unmarshal(data, &number) != nil {
			return nil
		}
		t.cached = number
		if t.duration <= 0 {
			return nil
		}
		return []Event{t.progress()}
	}

	if json.Unmarshal(data, &flag) != nil {
		return nil
	}

	switch name {
	case "pause":
		if flag {
			return []Event{{Kind: Pause}}
		}
		return []Event{{Kind: Play}}
	case "paused-for-cache":
		if flag {
			return []Event{{Kind: Buffer}}
		}
		return []Event{{Kind: BufferEnd}}
	case "eof-reached":
		if flag {
			return []Event{{Kind: Ended}}
		}
	case "fullscreen":
		return []Event{{Kind: FullscreenChanged, On: flag}}
	case "ontop":
		return []Event{{Kind: PiPChanged, On: flag}}
	}

	return nil
}

// listener owns the persistent connection that carries mpv's event stream.
type listener struct {
	conn     net.Conn
	dispatch func(Event)
	done     chan struct{}
	once     sync.Once
}

// listen connects to socketPath, registers the observed properties on that
// connection, and starts the read loop.
func listen(socketPath string, dispatch func(Event)) (*listener, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range observed {
		if err := writeCommand(conn, []interface{}{"observe_property", i + 1, name}); err != nil {
			conn.Close()
			return nil, fmt.Errorf("observe %s: %w", name, err)
		}
	}

	l := &listener{
		conn:     conn,
		dispatch: dispatch,
		done:     make(chan struct{}),
	}
	go l.readLoop()

	log.Infof("mpv event listener started on %s", socketPath)
	return l, nil
}

func (l *listener) readLoop() {
	defer close(l.done)

	var (
		t      translator
		reader = bufio.NewReader(l.conn)
	)

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Warnf("event listener read error: %v", err)
			}
			return
		}

		for _, ev := range t.translate(line) {
			l.dispatch(ev)
		}
	}
}

// stop closes the connection and waits for the read loop to exit.
func (l *listener) stop() {
	l.once.Do(func() {
		_ = l.conn.Close()
	})
	<-l.done
}
