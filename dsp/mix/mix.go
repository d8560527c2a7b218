// Package mix combines sample buffers: weighted additive mixing of whole
// layers and additive overlay of short buffers into a longer timeline.
package mix

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// ErrWeightCount is returned when explicit weights do not match the number
// of input buffers.
var ErrWeightCount = errors.New("mix: weights must match buffer count")

// Mix additively combines buffers into a new buffer whose length equals the
// longest input. Shorter inputs contribute silence beyond their own length.
// A nil weights slice applies uniform weights 1/len(buffers). Zero inputs
// yield an empty buffer. No input is mutated.
func Mix(buffers [][]float64, weights []float64) ([]float64, error) {
	if len(buffers) == 0 {
		return []float64{}, nil
	}
	if weights != nil && len(weights) != len(buffers) {
		return nil, ErrWeightCount
	}

	n := 0
	for _, b := range buffers {
		if len(b) > n {
			n = len(b)
		}
	}

	out := make([]float64, n)
	scaled := make([]float64, n)
	for i, b := range buffers {
		if len(b) == 0 {
			continue
		}
		w := 1.0 / float64(len(buffers))
		if weights != nil {
			w = weights[i]
		}
		scratch := core.EnsureLen(scaled, len(b))
		vecmath.ScaleBlock(scratch, b, w)
		vecmath.AddBlockInPlace(out[:len(b)], scratch)
	}
	return out, nil
}

// Overlay adds gain*src into dst starting at offset, truncating samples that
// fall past the end of dst. Samples before offset 0 are discarded as well.
// Overlay is pure addition, so overlaying a set of buffers yields the same
// result in any order.
func Overlay(dst, src []float64, offset int, gain float64) {
	for i, s := range src {
		idx := offset + i
		if idx < 0 {
			continue
		}
		if idx >= len(dst) {
			break
		}
		dst[idx] += s * gain
	}
}
