// ABOUTME: Playback control commands
// ABOUTME: The closed command set the controller sends to the playback worker
package playback

import (
	"github.com/tracklab/audition/internal/audio"
)

// Kind identifies a playback command
type Kind int

const (
	// KindPlay replaces whatever the sink holds with a new source and
	// starts playing it
	KindPlay Kind = iota

	// KindPause pauses the sink in place
	KindPause

	// KindContinue resumes a paused sink
	KindContinue

	// KindStop clears the sink and resets elapsed time to zero
	KindStop
)

// Command is one instruction to the playback worker. Source is set for
// KindPlay only; ownership of the value moves into the channel when
// sent and into the sink when applied.
type Command struct {
	Kind   Kind
	Source *audio.Source
}

func (k Kind) String() string {
	switch k {
	case KindPlay:
		return "play"
	case KindPause:
		return "pause"
	case KindContinue:
		return "continue"
	case KindStop:
		return "stop"
	}
	return "unknown"
}
