// ABOUTME: WAV track decoder
// ABOUTME: Reads PCM WAV files to int32 samples via go-audio/wav
package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/tracklab/audition/internal/audio"
)

// decodeWAV reads a whole PCM WAV file
func decodeWAV(rs io.ReadSeeker) ([]int32, audio.Format, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, audio.Format{}, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("wav decode error: %w", err)
	}

	bitDepth := int(dec.BitDepth)

	// go-audio hands back ints at native depth; left-justify into the
	// 24-bit range
	var shift int
	switch bitDepth {
	case 16:
		shift = 8
	case 24:
		shift = 0
	case 8:
		shift = 16
	default:
		return nil, audio.Format{}, fmt.Errorf("unsupported wav bit depth: %d", bitDepth)
	}

	samples := make([]int32, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = audio.ClampSample(int64(s) << shift)
	}

	format := audio.Format{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   bitDepth,
	}

	return samples, format, nil
}
