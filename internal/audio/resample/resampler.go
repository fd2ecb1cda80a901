// ABOUTME: Linear-interpolation resampler for decoded PCM buffers
// ABOUTME: Converts whole tracks from their native rate to the canonical playback rate
package resample

// Resampler converts interleaved samples between sample rates using
// linear interpolation. Tracks are fully decoded before playback, so
// the whole-buffer form is sufficient here; no streaming state is kept
// between calls.
type Resampler struct {
	inputRate  int
	outputRate int
	channels   int
	ratio      float64
}

// New creates a resampler for the given rates and channel count
func New(inputRate, outputRate, channels int) *Resampler {
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		channels:   channels,
		ratio:      float64(inputRate) / float64(outputRate),
	}
}

// OutputLen returns the number of output samples produced for an input
// buffer of the given length
func (r *Resampler) OutputLen(inputSamples int) int {
	inputFrames := inputSamples / r.channels
	outputFrames := int(float64(inputFrames) / r.ratio)
	return outputFrames * r.channels
}

// All resamples an entire interleaved buffer and returns the result.
// If input and output rates match, the input is returned unchanged.
func (r *Resampler) All(input []int32) []int32 {
	if r.inputRate == r.outputRate || len(input) == 0 {
		return input
	}

	inputFrames := len(input) / r.channels
	outputFrames := r.OutputLen(len(input)) / r.channels
	output := make([]int32, outputFrames*r.channels)

	pos := 0.0
	for outIdx := 0; outIdx < outputFrames; outIdx++ {
		inputIdx := int(pos)
		if inputIdx >= inputFrames-1 {
			// Past the last interpolatable frame, repeat the final one
			inputIdx = inputFrames - 1
			for ch := 0; ch < r.channels; ch++ {
				output[outIdx*r.channels+ch] = input[inputIdx*r.channels+ch]
			}
			pos += r.ratio
			continue
		}

		// Linear interpolation factor between adjacent frames
		frac := pos - float64(inputIdx)

		for ch := 0; ch < r.channels; ch++ {
			sample1 := input[inputIdx*r.channels+ch]
			sample2 := input[(inputIdx+1)*r.channels+ch]

			interpolated := float64(sample1)*(1.0-frac) + float64(sample2)*frac
			output[outIdx*r.channels+ch] = int32(interpolated)
		}

		pos += r.ratio
	}

	return output
}
