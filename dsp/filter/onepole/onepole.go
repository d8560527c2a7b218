// Package onepole implements single-pole IIR lowpass and highpass filters
// and their bandpass cascade.
//
// Filters start from zero state on every construction. The brief settling
// transient this causes is intentional: synthesis recipes rely on it for
// natural-sounding onsets, so callers must not pre-seed filter state.
//
// Cutoff frequencies are expected to be positive and below Nyquist
// (sampleRate/2); output for cutoffs outside that range is unspecified.
package onepole

import (
	"errors"
	"math"
)

// Errors returned by filter construction.
var (
	ErrInvalidSampleRate = errors.New("onepole: sample rate must be positive")
	ErrInvalidCutoff     = errors.New("onepole: cutoff frequency must be positive")
	ErrBandEdges         = errors.New("onepole: band low edge must be below high edge")
)

// Lowpass is a single-pole IIR lowpass:
//
//	y[n] = y[n-1] + alpha*(x[n] - y[n-1])
//
// with alpha = dt/(RC+dt), RC = 1/(2*pi*cutoff), dt = 1/sampleRate.
type Lowpass struct {
	alpha float64
	prev  float64
}

// NewLowpass creates a lowpass filter with zero initial state.
func NewLowpass(cutoffHz, sampleRate float64) (*Lowpass, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if cutoffHz <= 0 {
		return nil, ErrInvalidCutoff
	}

	rc := 1.0 / (2.0 * math.Pi * cutoffHz)
	dt := 1.0 / sampleRate
	return &Lowpass{alpha: dt / (rc + dt)}, nil
}

// ProcessSample filters one sample.
func (f *Lowpass) ProcessSample(x float64) float64 {
	f.prev += f.alpha * (x - f.prev)
	return f.prev
}

// Process filters in into a new slice, leaving in untouched.
func (f *Lowpass) Process(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = f.ProcessSample(x)
	}
	return out
}

// Reset clears filter state.
func (f *Lowpass) Reset() {
	f.prev = 0
}

// Highpass is a single-pole IIR highpass:
//
//	y[n] = alpha*(y[n-1] + x[n] - x[n-1])
//
// with alpha = RC/(RC+dt).
type Highpass struct {
	alpha   float64
	prevIn  float64
	prevOut float64
}

// NewHighpass creates a highpass filter with zero initial state.
func NewHighpass(cutoffHz, sampleRate float64) (*Highpass, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if cutoffHz <= 0 {
		return nil, ErrInvalidCutoff
	}

	rc := 1.0 / (2.0 * math.Pi * cutoffHz)
	dt := 1.0 / sampleRate
	return &Highpass{alpha: rc / (rc + dt)}, nil
}

// ProcessSample filters one sample.
func (f *Highpass) ProcessSample(x float64) float64 {
	y := f.alpha * (f.prevOut + x - f.prevIn)
	f.prevIn = x
	f.prevOut = y
	return y
}

// Process filters in into a new slice, leaving in untouched.
func (f *Highpass) Process(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = f.ProcessSample(x)
	}
	return out
}

// Reset clears filter state.
func (f *Highpass) Reset() {
	f.prevIn = 0
	f.prevOut = 0
}

// Bandpass filters in through a lowpass at highHz followed by a highpass at
// lowHz. The lowpass runs first; reversing the cascade changes the settling
// transient and is not equivalent.
func Bandpass(in []float64, lowHz, highHz, sampleRate float64) ([]float64, error) {
	if lowHz >= highHz {
		return nil, ErrBandEdges
	}

	lp, err := NewLowpass(highHz, sampleRate)
	if err != nil {
		return nil, err
	}
	hp, err := NewHighpass(lowHz, sampleRate)
	if err != nil {
		return nil, err
	}

	return hp.Process(lp.Process(in)), nil
}
