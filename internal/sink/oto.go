// ABOUTME: Oto-backed audio sink
// ABOUTME: Implements the playback sink primitives over a single oto context
package sink

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/tracklab/audition/internal/audio"
	"github.com/tracklab/audition/internal/playback"
)

// Oto is an audio output session backed by ebitengine/oto. The context
// is acquired once at construction; sources get a player each, fed
// from a counting reader so the playback position can be derived from
// bytes consumed. Clearing closes the current player but keeps the
// context, so the session stays usable for the next track.
//
// All methods run on the playback worker goroutine only, so no locking
// is needed here.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
	reader *countingReader
	queue  []*audio.Source
	paused bool
	volume float64
	format audio.Format
}

// New acquires the output device for the canonical playback format.
// oto allows a single context per process; the ready channel is waited
// on so a returned sink is immediately usable.
func New(volume int) (playback.Sink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   audio.Canonical.SampleRate,
		ChannelCount: audio.Canonical.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	log.Printf("Audio output initialized: %dHz, %d channels",
		audio.Canonical.SampleRate, audio.Canonical.Channels)

	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}

	return &Oto{
		ctx:    ctx,
		volume: float64(volume) / 100.0,
		format: audio.Canonical,
	}, nil
}

// Empty reports whether no content remains queued or audible
func (s *Oto) Empty() bool {
	s.advance()
	return s.player == nil && len(s.queue) == 0
}

// Paused reports the pause state
func (s *Oto) Paused() bool {
	return s.paused
}

// Play starts or resumes playback
func (s *Oto) Play() {
	s.paused = false
	s.advance()
	if s.player != nil {
		s.player.Play()
	}
}

// Pause suspends playback, keeping the queue intact
func (s *Oto) Pause() {
	s.paused = true
	if s.player != nil {
		s.player.Pause()
	}
}

// Clear drops the current player and all queued sources. The oto
// context stays open; this is the reusable alternative to a device
// stop.
func (s *Oto) Clear() {
	if s.player != nil {
		s.player.Close()
		s.player = nil
		s.reader = nil
	}
	s.queue = nil
}

// Append queues a source. If nothing is playing it becomes the current
// track immediately.
func (s *Oto) Append(src *audio.Source) {
	if src == nil {
		return
	}
	if s.player == nil {
		s.start(src)
		return
	}
	s.queue = append(s.queue, src)
}

// Position returns how far into the current track playback has
// progressed, derived from bytes handed to the device minus what it
// has not yet played.
func (s *Oto) Position() time.Duration {
	s.advance()
	if s.player == nil || s.reader == nil {
		return 0
	}

	consumed := s.reader.count() - s.player.BufferedSize()
	if consumed < 0 {
		consumed = 0
	}
	return s.format.BytesToDuration(consumed)
}

// Close releases the output session. oto contexts cannot be destroyed,
// so the device is suspended instead.
func (s *Oto) Close() error {
	s.Clear()
	if s.ctx != nil {
		if err := s.ctx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend audio context: %w", err)
		}
	}
	return nil
}

// start makes src the current track
func (s *Oto) start(src *audio.Source) {
	s.reader = newCountingReader(src.Reader())
	s.player = s.ctx.NewPlayer(s.reader)
	s.player.SetVolume(s.volume)
	if !s.paused {
		s.player.Play()
	}
}

// advance retires a finished track and promotes the next queued one
func (s *Oto) advance() {
	if s.player == nil {
		return
	}
	if !s.reader.done() || s.player.BufferedSize() > 0 {
		return
	}

	s.player.Close()
	s.player = nil
	s.reader = nil

	if len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.start(next)
	}
}

// countingReader tracks how many bytes the device has pulled from the
// source. oto reads from its own goroutine, so the counter is guarded.
type countingReader struct {
	mu  sync.Mutex
	r   io.Reader
	n   int
	eof bool
}

func newCountingReader(r io.Reader) *countingReader {
	return &countingReader{r: r}
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.mu.Lock()
	c.n += n
	if err == io.EOF {
		c.eof = true
	}
	c.mu.Unlock()
	return n, err
}

func (c *countingReader) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func (c *countingReader) done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eof
}
