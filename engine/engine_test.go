package engine

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeMPV accepts IPC connections on a unix socket and answers every command with success.
type fakeMPV struct {
	ln       net.Listener
	mu       sync.Mutex
	commands [][]interface{}
	conns    chan net.Conn
}

func newFakeMPV(t *testing.T) (*fakeMPV, string) {
	dir, err := os.MkdirTemp("", "fitplayer-ipc")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "mpv.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}

	f := &fakeMPV{ln: ln, conns: make(chan net.Conn, 4)}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			f.conns <- conn
			go f.serve(conn)
		}
	}()

	return f, path
}

func (f *fakeMPV) serve(conn net.Conn) {
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}

		var cmd ipcCommand
		if json.Unmarshal(line, &cmd) != nil {
			continue
		}

		f.mu.Lock()
		f.commands = append(f.commands, cmd.Command)
		f.mu.Unlock()

		_, _ = conn.Write([]byte(`{"data":null,"error":"success"}` + "\n"))
	}
}

func (f *fakeMPV) received() [][]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]interface{}(nil), f.commands...)
}

func TestTranslator(t *testing.T) {
	Convey("Given a translator", t, func() {
		var tr translator

		feed := func(line string) []Event {
			return tr.translate([]byte(line))
		}

		Convey("Unparseable and unknown lines yield nothing", func() {
			So(feed(`not json`), ShouldBeEmpty)
			So(feed(`{"request_id":0,"error":"success"}`), ShouldBeEmpty)
			So(feed(`{"event":"idle"}`), ShouldBeEmpty)
		})

		Convey("Null property values are skipped", func() {
			So(feed(`{"event":"property-change","name":"duration","data":null}`), ShouldBeEmpty)
		})

		Convey("Position before duration is held back", func() {
			So(feed(`{"event":"property-change","name":"time-pos","data":5}`), ShouldBeEmpty)

			Convey("And flows once duration is known", func() {
				evs := feed(`{"event":"property-change","name":"duration","data":100}`)
				So(evs, ShouldHaveLength, 1)
				So(evs[0].Kind, ShouldEqual, Duration)
				So(evs[0].Duration, ShouldEqual, 100)

				evs = feed(`{"event":"property-change","name":"demuxer-cache-time","data":40}`)
				So(evs, ShouldHaveLength, 1)
				So(evs[0].Kind, ShouldEqual, Progress)
				So(evs[0].Played, ShouldAlmostEqual, 0.05)
				So(evs[0].Loaded, ShouldAlmostEqual, 0.4)

				evs = feed(`{"event":"property-change","name":"time-pos","data":250}`)
				So(evs[0].Played, ShouldEqual, 1)
				So(evs[0].PlayedSeconds, ShouldEqual, 250)
			})
		})

		Convey("Flags map onto their events", func() {
			So(feed(`{"event":"property-change","name":"pause","data":true}`)[0].Kind, ShouldEqual, Pause)
			So(feed(`{"event":"property-change","name":"pause","data":false}`)[0].Kind, ShouldEqual, Play)
			So(feed(`{"event":"property-change","name":"paused-for-cache","data":true}`)[0].Kind, ShouldEqual, Buffer)
			So(feed(`{"event":"property-change","name":"paused-for-cache","data":false}`)[0].Kind, ShouldEqual, BufferEnd)
			So(feed(`{"event":"property-change","name":"eof-reached","data":true}`)[0].Kind, ShouldEqual, Ended)
			So(feed(`{"event":"property-change","name":"eof-reached","data":false}`), ShouldBeEmpty)

			fs := feed(`{"event":"property-change","name":"fullscreen","data":true}`)[0]
			So(fs.Kind, ShouldEqual, FullscreenChanged)
			So(fs.On, ShouldBeTrue)

			pip := feed(`{"event":"property-change","name":"ontop","data":false}`)[0]
			So(pip.Kind, ShouldEqual, PiPChanged)
			So(pip.On, ShouldBeFalse)
		})

		Convey("File lifecycle events", func() {
			So(feed(`{"event":"start-file"}`)[0].Kind, ShouldEqual, Buffer)
			So(feed(`{"event":"file-loaded"}`)[0].Kind, ShouldEqual, Ready)
			So(feed(`{"event":"end-file","reason":"eof"}`), ShouldBeEmpty)

			evs := feed(`{"event":"end-file","reason":"error","file_error":"loading failed"}`)
			So(evs[0].Kind, ShouldEqual, Error)
			So(evs[0].Err.Error(), ShouldContainSubstring, "loading failed")
		})
	})
}

func TestSendCommand(t *testing.T) {
	Convey("Given a fake mpv socket", t, func() {
		fake, path := newFakeMPV(t)

		Convey("sendCommand delivers the JSON command", func() {
			_, err := sendCommand(path, []interface{}{"set_property", "pause", true})
			So(err, ShouldBeNil)

			got := fake.received()
			So(got, ShouldHaveLength, 1)
			So(got[0][0], ShouldEqual, "set_property")
			So(got[0][2], ShouldEqual, true)
		})

		Convey("sendWithRetry gives up on a missing socket", func() {
			_, err := sendWithRetry(path+".missing", []interface{}{"quit"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "after 3 attempts")
		})
	})
}

func TestListener(t *testing.T) {
	Convey("Given a listener attached to a fake mpv", t, func() {
		fake, path := newFakeMPV(t)

		events := make(chan Event, 8)
		l, err := listen(path, func(ev Event) { events <- ev })
		So(err, ShouldBeNil)

		conn := <-fake.conns

		Convey("It registers every observed property on its own connection", func() {
			So(func() bool {
				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					if len(fake.received()) == len(observed) {
						return true
					}
					time.Sleep(10 * time.Millisecond)
				}
				return false
			}(), ShouldBeTrue)
			So(fake.received()[0][0], ShouldEqual, "observe_property")
		})

		Convey("It dispatches translated events", func() {
			_, err := conn.Write([]byte(`{"event":"property-change","name":"fullscreen","data":true}` + "\n"))
			So(err, ShouldBeNil)

			select {
			case ev := <-events:
				So(ev.Kind, ShouldEqual, FullscreenChanged)
				So(ev.On, ShouldBeTrue)
			case <-time.After(2 * time.Second):
				So("no event", ShouldBeEmpty)
			}
		})

		Reset(func() {
			l.stop()
		})
	})
}

func TestMPV(t *testing.T) {
	Convey("Given an MPV engine that was never started", t, func() {
		m := NewMPV("")

		Convey("It defaults the binary", func() {
			So(m.binary, ShouldEqual, "mpv")
		})

		Convey("Commands report ErrNotRunning", func() {
			So(m.SetPlaying(true), ShouldEqual, ErrNotRunning)
			So(m.SeekTo(0.5), ShouldEqual, ErrNotRunning)
		})

		Convey("Load validates the target first", func() {
			So(m.Load("-flag"), ShouldNotBeNil)
			So(m.Load("ftp://example.com/x.mp4"), ShouldNotBeNil)
		})

		Convey("Subscribers receive dispatched events until they unsubscribe", func() {
			var got []EventKind
			unsubscribe := m.Subscribe(func(ev Event) { got = append(got, ev.Kind) })

			m.dispatch(Event{Kind: Play})
			unsubscribe()
			unsubscribe()
			m.dispatch(Event{Kind: Pause})

			So(got, ShouldResemble, []EventKind{Play})
		})

		Convey("Close is idempotent and later commands report ErrClosed", func() {
			So(m.Close(), ShouldBeNil)
			So(m.Close(), ShouldBeNil)
			So(m.SetMuted(true), ShouldEqual, ErrClosed)
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		u, err := sanitizeMediaTarget(" https://cdn.example.com/workout.m3u8 ")
		So(err, ShouldBeNil)
		So(u, ShouldEqual, "https://cdn.example.com/workout.m3u8")

		p, err := sanitizeMediaTarget("videos/../videos/yoga.mp4")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, filepath.Clean("videos/yoga.mp4"))

		_, err = sanitizeMediaTarget("")
		So(err, ShouldNotBeNil)
		_, err = sanitizeMediaTarget("a\nb")
		So(err, ShouldNotBeNil)
	})

	Convey("sanitizeTitle", t, func() {
		So(sanitizeTitle(" Core\tBlast\n"), ShouldEqual, "Core Blast")
	})
}
