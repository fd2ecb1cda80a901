// ABOUTME: Ogg Vorbis track decoder
// ABOUTME: Decodes whole ogg streams to int32 samples via jfreymuth/oggvorbis
package decode

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/tracklab/audition/internal/audio"
)

// decodeVorbis decodes an entire ogg vorbis stream. oggvorbis produces
// float32 samples in [-1, 1], scaled here into the 24-bit range.
func decodeVorbis(r io.Reader) ([]int32, audio.Format, error) {
	data, fmtInfo, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("vorbis decode error: %w", err)
	}

	samples := make([]int32, len(data))
	for i, f := range data {
		samples[i] = audio.ClampSample(int64(f * float32(audio.Max24Bit)))
	}

	format := audio.Format{
		SampleRate: fmtInfo.SampleRate,
		Channels:   fmtInfo.Channels,
		BitDepth:   16,
	}

	return samples, format, nil
}
