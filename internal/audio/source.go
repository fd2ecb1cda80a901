// ABOUTME: Decoded audio source abstraction
// ABOUTME: Immutable, replayable PCM buffer shared between controller and playback worker
package audio

import (
	"bytes"
	"io"
	"time"
)

// Source is a fully decoded audio track in the canonical format. The
// PCM buffer is immutable after construction, so Source values may be
// copied and handed across goroutines freely; copies share the
// underlying buffer.
type Source struct {
	format Format
	pcm    []byte
	dur    time.Duration
}

// NewSource wraps interleaved PCM bytes in the given format. The
// caller must not modify pcm afterwards.
func NewSource(format Format, pcm []byte) *Source {
	return &Source{
		format: format,
		pcm:    pcm,
		dur:    format.BytesToDuration(len(pcm)),
	}
}

// Reader returns a fresh reader over the PCM data. Each call starts at
// the beginning, so a Source can be auditioned any number of times.
func (s *Source) Reader() io.Reader {
	return bytes.NewReader(s.pcm)
}

// Format returns the PCM format of the buffer
func (s *Source) Format() Format {
	return s.format
}

// Duration returns the total playback time of the track
func (s *Source) Duration() time.Duration {
	return s.dur
}

// Size returns the PCM buffer size in bytes
func (s *Source) Size() int {
	return len(s.pcm)
}
