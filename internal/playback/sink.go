// ABOUTME: Audio sink capability used by the playback worker
// ABOUTME: Defines the sink primitives and the startup-time factory
package playback

import (
	"time"

	"github.com/tracklab/audition/internal/audio"
)

// Sink is a live audio output session. The worker goroutine owns its
// sink exclusively; no other goroutine may touch it, so implementations
// need no internal locking.
//
// Clear is the only content-removal primitive. Some playback backends
// cannot be reused after a hard device stop, so the worker never asks
// for one; clearing leaves the session ready for the next Append.
type Sink interface {
	// Empty reports whether the sink has no content queued
	Empty() bool

	// Paused reports whether playback is paused
	Paused() bool

	// Play starts or resumes playback of queued content
	Play()

	// Pause suspends playback, keeping content queued
	Pause()

	// Clear removes all queued content without ending the session
	Clear()

	// Append queues a source for playback
	Append(src *audio.Source)

	// Position returns the playback position within the current content
	Position() time.Duration
}

// SinkFactory acquires the output device. It runs once, on the worker
// goroutine, at startup; failure is unrecoverable and ends the worker.
type SinkFactory func() (Sink, error)

// Repainter asks the front end to redraw soon. Invoked by the worker
// after every state change the user should see: each polling tick and
// every applied Stop.
type Repainter interface {
	RequestRepaint()
}
