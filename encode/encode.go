// Package encode converts rendered float sample buffers to 16-bit PCM and
// writes them as mono RIFF/WAV files. Clamping to [-1, 1] happens here, at
// the boundary, so the synthesis pipeline itself never has to saturate.
package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const (
	bitDepth  = 16
	pcmFormat = 1 // PCM
	maxInt16  = 32767
)

// ErrNoSamples is returned when an empty buffer is passed for encoding.
var ErrNoSamples = errors.New("encode: no samples")

// PCM16 clamps each sample to [-1, 1] and scales it to a signed 16-bit
// integer value.
func PCM16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		out[i] = int(math.Round(core.Clamp(v, -1, 1) * maxInt16))
	}
	return out
}

// Encode writes samples as mono 16-bit PCM WAV to w.
func Encode(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if sampleRate <= 0 {
		return fmt.Errorf("encode: sample rate must be > 0: %d", sampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           PCM16(samples),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode: write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: finalize: %w", err)
	}
	return nil
}

// WriteWAV encodes samples to a WAV file at path, creating or truncating it.
func WriteWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}

	if err := Encode(f, samples, sampleRate); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encode: close %s: %w", path, err)
	}
	return nil
}
