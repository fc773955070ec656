package engine

import (
	"context"
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jeremyfitness/fitplayer/log"
	"github.com/jeremyfitness/fitplayer/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	queueSize         = 64
	pipScale          = 0.35
)

// request is one queued IPC command. label names it in logs.
type request struct {
	label   string
	command []interface{}
}

// MPV implements Engine on top of an mpv process controlled through JSON IPC.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}

	queue     chan request
	worker    sync.WaitGroup
	listener  *listener
	closeOnce sync.Once

	mu          sync.RWMutex // guards the fields below
	running     bool
	closed      bool
	subscribers map[int]Listener
	nextID      int
}

// NewMPV creates an engine that launches binary (usually "mpv") on Start.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}

	return &MPV{
		binary:      binary,
		exited:      make(chan struct{}),
		queue:       make(chan request, queueSize),
		subscribers: make(map[int]Listener),
	}
}

// Start launches an idle mpv window titled title and attaches the event stream.
// Media is loaded separately with Load.
func (m *MPV) Start(ctx context.Context, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.running {
		return nil
	}

	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Sockets(), fmt.Sprintf("mpv-%x.sock", randomBytes))
	}

	safeTitle := sanitizeTitle(title)

	// Only what the control surface needs; the user's mpv.conf stays in charge of rendering.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--idle=yes",
		"--keep-open=yes",
		"--pause=yes",
		"--force-window=immediate",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--title=%s", safeTitle),
		fmt.Sprintf("--force-media-title=%s", safeTitle),
	}

	m.cmd = exec.CommandContext(ctx, m.binary, args...)
	m.cmd.SysProcAttr = detachedAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(ctx); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = terminate(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	l, err := listen(m.socketPath, m.dispatch)
	if err != nil {
		_ = terminate(m.cmd)
		return err
	}
	m.listener = l

	m.worker.Add(1)
	go m.work()

	m.running = true
	log.Infof("mpv started on socket %s", m.socketPath)
	return nil
}

// Exited is closed once the mpv process is gone, for example after the user closes its window.
func (m *MPV) Exited() <-chan struct{} {
	return m.exited
}

func (m *MPV) waitForSocket(ctx context.Context) error {
	for i := 0; i < socketWaitRetries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		case <-time.After(socketWaitDelay):
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// work drains the queue in order. Failures are logged; callers never wait on IPC.
func (m *MPV) work() {
	defer m.worker.Done()

	for req := range m.queue {
		if _, err := sendWithRetry(m.socketPath, req.command); err != nil {
			log.With(log.Fields{"command": req.label, "socket": m.socketPath}).Warn(err)
		}
	}
}

func (m *MPV) enqueue(label string, command ...interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}
	if !m.running {
		return ErrNotRunning
	}

	select {
	case m.queue <- request{label: label, command: command}:
		return nil
	default:
		return fmt.Errorf("mpv %s: command queue full", label)
	}
}

func (m *MPV) set(property string, value interface{}) error {
	return m.enqueue("set "+property, "set_property", property, value)
}

func (m *MPV) Load(rawURL string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	return m.enqueue("load", "loadfile", target, "replace")
}

func (m *MPV) SeekTo(fraction float64) error {
	return m.enqueue("seek", "seek", fraction*100, "absolute-percent+exact")
}

func (m *MPV) SetPlaying(playing bool) error {
	return m.set("pause", !playing)
}

func (m *MPV) SetMuted(muted bool) error {
	return m.set("mute", muted)
}

func (m *MPV) SetVolume(volume float64) error {
	return m.set("volume", volume*100)
}

func (m *MPV) SetLoop(loop bool) error {
	if loop {
		return m.set("loop-file", "inf")
	}
	return m.set("loop-file", "no")
}

func (m *MPV) SetPlaybackRate(rate float64) error {
	return m.set("speed", rate)
}

func (m *MPV) SetFullscreen(on bool) error {
	return m.set("fullscreen", on)
}

// SetPictureInPicture pins a shrunken window above others, mpv's closest analogue to PiP.
func (m *MPV) SetPictureInPicture(on bool) error {
	scale := 1.0
	if on {
		scale = pipScale
	}
	if err := m.set("window-scale", scale); err != nil {
		return err
	}
	return m.set("ontop", on)
}

func (m *MPV) Subscribe(l Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = l
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

func (m *MPV) dispatch(ev Event) {
	m.mu.RLock()
	listeners := make([]Listener, 0, len(m.subscribers))
	for _, l := range m.subscribers {
		listeners = append(listeners, l)
	}
	m.mu.RUnlock()

	for _, l := range listeners {
		l(ev)
	}
}

// Close quits mpv, stops the listener and the command worker, and removes the socket.
func (m *MPV) Close() error {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		wasRunning := m.running
		m.closed = true
		m.running = false
		m.mu.Unlock()

		close(m.queue)
		m.worker.Wait()

		if !wasRunning {
			return
		}

		_, _ = sendCommand(m.socketPath, []interface{}{"quit"})

		select {
		case <-m.exited:
		case <-time.After(3 * time.Second):
			_ = terminate(m.cmd)
		}

		if m.listener != nil {
			m.listener.stop()
		}

		_ = os.Remove(m.socketPath)
	})

	return nil
}

// sanitizeMediaTarget rejects anything mpv could read as a flag and limits URLs to http(s).
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
