// ABOUTME: FLAC track decoder
// ABOUTME: Parses FLAC frames to int32 samples via mewkiz/flac
package decode

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/tracklab/audition/internal/audio"
)

// decodeFLAC decodes an entire FLAC stream frame by frame
func decodeFLAC(r io.Reader) ([]int32, audio.Format, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("failed to parse flac stream: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	// Left-justify whatever the stream carries into the 24-bit range
	shift := 24 - bitDepth
	if shift < 0 {
		return nil, audio.Format{}, fmt.Errorf("unsupported flac bit depth: %d", bitDepth)
	}

	var samples []int32
	if info.NSamples > 0 {
		samples = make([]int32, 0, int(info.NSamples)*channels)
	}

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, audio.Format{}, fmt.Errorf("flac frame parse error: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				samples = append(samples, frame.Subframes[ch].Samples[i]<<shift)
			}
		}
	}

	format := audio.Format{
		SampleRate: int(info.SampleRate),
		Channels:   channels,
		BitDepth:   bitDepth,
	}

	return samples, format, nil
}
