// ABOUTME: File decoding front end for auditioned tracks
// ABOUTME: Dispatches on extension and converts everything to the canonical playback format
package decode

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tracklab/audition/internal/audio"
	"github.com/tracklab/audition/internal/audio/resample"
)

// File fully decodes an audio file into a replayable Source in the
// canonical playback format. Decoding happens up front so the playback
// worker only ever transports finished buffers.
func File(path string) (*audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))

	var samples []int32
	var format audio.Format

	switch ext {
	case ".mp3":
		samples, format, err = decodeMP3(f)
	case ".flac":
		samples, format, err = decodeFLAC(f)
	case ".wav":
		samples, format, err = decodeWAV(f)
	case ".ogg", ".oga":
		samples, format, err = decodeVorbis(f)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .flac, .wav, .ogg)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	return toCanonical(samples, format)
}

// toCanonical upmixes, resamples, and packs decoded samples into a
// Source in the canonical format
func toCanonical(samples []int32, format audio.Format) (*audio.Source, error) {
	switch format.Channels {
	case 1:
		samples = upmixMono(samples)
	case 2:
		// already interleaved stereo
	default:
		return nil, fmt.Errorf("unsupported channel count: %d", format.Channels)
	}

	r := resample.New(format.SampleRate, audio.Canonical.SampleRate, audio.Canonical.Channels)
	samples = r.All(samples)

	return audio.NewSource(audio.Canonical, packS16LE(samples)), nil
}

// upmixMono duplicates each mono sample into a stereo frame
func upmixMono(samples []int32) []int32 {
	out := make([]int32, len(samples)*2)
	for i, s := range samples {
		out[i*2] = s
		out[i*2+1] = s
	}
	return out
}

// packS16LE converts 24-bit-range samples to interleaved s16le bytes
func packS16LE(samples []int32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(audio.SampleToInt16(s)))
	}
	return out
}
