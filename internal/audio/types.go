// ABOUTME: Audio type definitions
// ABOUTME: Defines PCM formats and sample conversion helpers
package audio

import "time"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes interleaved PCM audio
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Canonical is the playback format every decoded track is converted to.
// The output device is opened once with this format, so sources of any
// native rate can share a single device session.
var Canonical = Format{
	SampleRate: 48000,
	Channels:   2,
	BitDepth:   16,
}

// BytesPerFrame returns the byte size of one interleaved frame
func (f Format) BytesPerFrame() int {
	return f.Channels * f.BitDepth / 8
}

// BytesPerSecond returns the byte rate of the format
func (f Format) BytesPerSecond() int {
	return f.SampleRate * f.BytesPerFrame()
}

// BytesToDuration converts a byte count to playback time in this format
func (f Format) BytesToDuration(n int) time.Duration {
	bps := f.BytesPerSecond()
	if bps == 0 || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(bps)
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit playback)
func SampleToInt16(sample int32) int16 {
	// Right-shift to convert 24-bit (or 16-bit) to 16-bit range
	return int16(sample >> 8)
}

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	// Left-shift to position 16-bit value in upper bits
	return int32(sample) << 8
}

// ClampSample clamps an int64 intermediate value to the 24-bit range
func ClampSample(v int64) int32 {
	if v > Max24Bit {
		return Max24Bit
	}
	if v < Min24Bit {
		return Min24Bit
	}
	return int32(v)
}
