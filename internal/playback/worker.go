// ABOUTME: Playback worker loop
// ABOUTME: Owns the audio sink and alternates between blocking wait and bounded poll
package playback

import (
	"fmt"
	"io"
	"log"
	"time"
)

// workerContext is everything the worker goroutine owns or shares: the
// receive side of the command channel, the elapsed cell it writes, and
// the repaint capability supplied by the front end.
type workerContext struct {
	id      string
	cmds    <-chan Command
	quit    <-chan struct{}
	cell    *elapsedCell
	repaint Repainter
	newSink SinkFactory
	tick    time.Duration
}

// closing reports whether teardown has begun. Commands received after
// this flips are drained without being applied.
func (w *workerContext) closing() bool {
	select {
	case <-w.quit:
		return true
	default:
		return false
	}
}

// run is the worker goroutine entry point. It acquires the sink, then
// loops until the command channel closes. A panic anywhere in the loop
// is recorded as the handle's fault and re-surfaced at Close.
func (w *workerContext) run(h *Handle) {
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.fault = fmt.Errorf("panic: %v", r)
			log.Printf("Playback worker %s panicked: %v", w.id, r)
		}
	}()

	sink, err := w.newSink()
	if err != nil {
		// No output device: unrecoverable, the worker cannot run
		h.fault = fmt.Errorf("audio output unavailable: %w", err)
		log.Printf("Playback worker %s failed to start: %v", w.id, err)
		return
	}
	if closer, ok := sink.(io.Closer); ok {
		defer closer.Close()
	}

	log.Printf("Playback worker %s running", w.id)

	for {
		if sink.Empty() || sink.Paused() {
			// Nothing is audible: block until the next command so no
			// CPU is spent while idle
			cmd, ok := <-w.cmds
			if !ok {
				log.Printf("Playback worker %s shutting down", w.id)
				return
			}
			if w.closing() {
				continue
			}
			w.apply(sink, cmd)
			continue
		}

		// Sound is playing: take a command if one is ready, otherwise
		// refresh the elapsed time and sleep one bounded tick
		select {
		case cmd, ok := <-w.cmds:
			if !ok {
				log.Printf("Playback worker %s shutting down", w.id)
				return
			}
			if w.closing() {
				continue
			}
			w.apply(sink, cmd)
		default:
			w.cell.set(sink.Position())
			w.repaint.RequestRepaint()
			time.Sleep(w.tick)
		}
	}
}

// apply executes a single command against the sink. Each command is a
// terminal state transition; none can fail partway.
func (w *workerContext) apply(sink Sink, cmd Command) {
	switch cmd.Kind {
	case KindPlay:
		// Clear before appending: a new track must never mix with the
		// old one, and clear keeps the session reusable where a hard
		// stop would not
		sink.Clear()
		sink.Append(cmd.Source)
		sink.Play()

	case KindPause:
		sink.Pause()

	case KindContinue:
		sink.Play()

	case KindStop:
		sink.Clear()
		w.cell.reset()
		// The idle loop runs no ticks, so push the zeroed time to the
		// display now instead of waiting for one
		w.repaint.RequestRepaint()
	}
}
