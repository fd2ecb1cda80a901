// ABOUTME: Controller-facing playback handle
// ABOUTME: Owns the command channel send side and the worker join capability
package playback

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrClosed is returned by Send once the worker has exited, whether
// through Close or an earlier unrecoverable fault. The controller's
// only valid response is to stop issuing commands.
var ErrClosed = errors.New("playback: command channel closed")

const defaultTick = 100 * time.Millisecond

// Commands are buffered so an interactive controller never waits on a
// worker mid-tick. The worker drains far faster than a user can press
// keys; the buffer exists for burst tolerance, not backpressure.
const commandBuffer = 64

// Handle controls the playback worker from the front end. Create one
// with Spawn; Send commands, read Elapsed on each frame, and Close it
// when playback is no longer wanted. After Close a fresh Handle may be
// spawned.
//
// A Handle serves a single controller goroutine: Send and Close must
// not be called concurrently with each other. Elapsed is safe from any
// goroutine.
type Handle struct {
	cmds chan Command
	quit chan struct{}
	done chan struct{}
	cell *elapsedCell

	closeOnce sync.Once

	// fault is written by the worker goroutine before done is closed
	// and read only after <-done, so access is ordered by the channel
	fault error
}

// Option adjusts Spawn behavior
type Option func(*workerContext)

// WithTick overrides the bounded poll interval of the worker. Any
// positive bound preserves correctness; shorter ticks trade CPU for
// display latency.
func WithTick(d time.Duration) Option {
	return func(w *workerContext) {
		if d > 0 {
			w.tick = d
		}
	}
}

// Spawn launches the playback worker bound to a fresh command channel
// and a fresh elapsed-time cell. The sink is acquired on the worker
// goroutine via newSink; if acquisition fails the worker exits and the
// failure surfaces from Close.
func Spawn(repaint Repainter, newSink SinkFactory, opts ...Option) *Handle {
	h := &Handle{
		cmds: make(chan Command, commandBuffer),
		quit: make(chan struct{}),
		done: make(chan struct{}),
		cell: &elapsedCell{},
	}

	w := &workerContext{
		id:      uuid.NewString()[:8],
		cmds:    h.cmds,
		quit:    h.quit,
		cell:    h.cell,
		repaint: repaint,
		newSink: newSink,
		tick:    defaultTick,
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run(h)

	log.Printf("Playback worker %s spawned (tick %v)", w.id, w.tick)

	return h
}

// Send enqueues a command for the worker. Commands are delivered in
// send order and never coalesced. Returns ErrClosed if the worker has
// already exited.
func (h *Handle) Send(cmd Command) error {
	// Fail fast once teardown has begun or the worker has exited:
	// sends after either must error rather than pile up.
	select {
	case <-h.quit:
		return ErrClosed
	case <-h.done:
		return ErrClosed
	default:
	}

	select {
	case h.cmds <- cmd:
		return nil
	case <-h.done:
		return ErrClosed
	}
}

// Elapsed returns the latest elapsed time written by the worker. While
// playing it may be stale by up to one tick; immediately after a Stop
// is applied it reads exactly zero.
func (h *Handle) Elapsed() time.Duration {
	return h.cell.get()
}

// Close shuts the worker down and waits for it to exit. The quit
// signal flips first, then the send side closes; the worker drains the
// channel without applying, so commands still queued at that moment
// are discarded rather than played during teardown. Close is
// idempotent and returns the worker's fault, if it died of one, so
// defects are not swallowed.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		close(h.quit)
		close(h.cmds)
	})

	<-h.done

	if h.fault != nil {
		return fmt.Errorf("playback worker fault: %w", h.fault)
	}
	return nil
}
