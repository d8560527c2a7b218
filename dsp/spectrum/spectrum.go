// Package spectrum provides magnitude-spectrum analysis helpers used to
// verify the frequency content of synthesized buffers.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when there is no data to analyze.
var ErrEmptyInput = errors.New("spectrum: input must not be empty")

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// Analyze computes the magnitude spectrum of samples, zero-padded to the
// next power of two. Only the first fftSize/2 bins (up to Nyquist) are
// returned. The bin width in Hz is sampleRate/fftSize.
func Analyze(samples []float64, sampleRate float64) (mags []float64, binWidth float64, err error) {
	if len(samples) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if sampleRate <= 0 {
		return nil, 0, fmt.Errorf("spectrum: sample rate must be > 0: %f", sampleRate)
	}

	fftSize := nextPowerOf2(len(samples))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range samples {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Magnitude(freq[:fftSize/2]), sampleRate / float64(fftSize), nil
}

// DominantFrequency returns the frequency in Hz of the strongest spectral
// bin of samples, ignoring the DC bin. Resolution is limited by the buffer
// length (sampleRate / fftSize).
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	mags, binWidth, err := Analyze(samples, sampleRate)
	if err != nil {
		return 0, err
	}

	peakBin := 0
	peakMag := math.Inf(-1)
	for i := 1; i < len(mags); i++ {
		if mags[i] > peakMag {
			peakMag = mags[i]
			peakBin = i
		}
	}
	return float64(peakBin) * binWidth, nil
}

// BandEnergy returns the summed magnitude between lowHz and highHz.
func BandEnergy(samples []float64, sampleRate, lowHz, highHz float64) (float64, error) {
	mags, binWidth, err := Analyze(samples, sampleRate)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i, m := range mags {
		f := float64(i) * binWidth
		if f >= lowHz && f < highHz {
			sum += m
		}
	}
	return sum, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
