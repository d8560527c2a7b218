// Package osc implements a phase-continuous multi-harmonic oscillator.
//
// All harmonics are derived from a single shared phase accumulator, keeping
// them phase-locked to the fundamental. That lock is what gives stacked
// harmonics their characteristic buzz; independent per-harmonic phases would
// drift audibly for time-varying frequencies.
package osc

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by oscillator construction.
var (
	ErrInvalidSampleRate = errors.New("osc: sample rate must be positive")
	ErrNoFrequency       = errors.New("osc: a frequency or frequency function is required")
)

// Harmonic pairs an integer harmonic order with its amplitude weight.
type Harmonic struct {
	Order  int
	Weight float64
}

// FreqFunc returns the instantaneous frequency in Hz at elapsed time t seconds.
type FreqFunc func(t float64) float64

// Constant returns a FreqFunc with a fixed frequency.
func Constant(freqHz float64) FreqFunc {
	return func(float64) float64 { return freqHz }
}

// ExpSweep returns a FreqFunc sweeping exponentially from startHz to endHz
// over durationSec. Each octave of the sweep takes the same amount of time.
func ExpSweep(startHz, endHz, durationSec float64) FreqFunc {
	lnRatio := math.Log(endHz / startHz)
	return func(t float64) float64 {
		return startHz * math.Exp(t/durationSec*lnRatio)
	}
}

// Oscillator renders sums of phase-locked harmonics of a (possibly
// time-varying) fundamental. State is private to one instance; independent
// sounds must use independent oscillators.
type Oscillator struct {
	sampleRate float64
	freq       FreqFunc
	harmonics  []Harmonic
	initPhase  float64
	phase      float64
	elapsed    int
}

// Option configures an Oscillator.
type Option func(*Oscillator) error

// WithFrequency sets a fixed fundamental frequency in Hz.
func WithFrequency(freqHz float64) Option {
	return func(o *Oscillator) error {
		if freqHz <= 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
			return fmt.Errorf("osc: frequency must be > 0 and finite: %f", freqHz)
		}
		o.freq = Constant(freqHz)
		return nil
	}
}

// WithFrequencyFunc sets a time-varying fundamental frequency. The function
// is evaluated once per sample.
func WithFrequencyFunc(fn FreqFunc) Option {
	return func(o *Oscillator) error {
		if fn == nil {
			return ErrNoFrequency
		}
		o.freq = fn
		return nil
	}
}

// WithHarmonics sets the harmonic stack. Orders must be >= 1; order 1 is the
// fundamental. The default stack is a single unit-weight fundamental.
func WithHarmonics(harmonics ...Harmonic) Option {
	return func(o *Oscillator) error {
		if len(harmonics) == 0 {
			return errors.New("osc: harmonic stack must not be empty")
		}
		for _, h := range harmonics {
			if h.Order < 1 {
				return fmt.Errorf("osc: harmonic order must be >= 1: %d", h.Order)
			}
		}
		o.harmonics = harmonics
		return nil
	}
}

// WithInitialPhase sets the starting phase in radians. Detuned oscillator
// stacks use distinct initial phases to avoid a coherent onset.
func WithInitialPhase(phase float64) Option {
	return func(o *Oscillator) error {
		if math.IsNaN(phase) || math.IsInf(phase, 0) {
			return fmt.Errorf("osc: initial phase must be finite: %f", phase)
		}
		o.initPhase = phase
		o.phase = phase
		return nil
	}
}

// New creates an oscillator for the given sample rate.
func New(sampleRate float64, opts ...Option) (*Oscillator, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	o := &Oscillator{
		sampleRate: sampleRate,
		harmonics:  []Harmonic{{Order: 1, Weight: 1.0}},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.freq == nil {
		return nil, ErrNoFrequency
	}

	return o, nil
}

// Render generates n samples, advancing the shared phase accumulator.
// Consecutive calls are phase-continuous. n <= 0 yields an empty buffer.
func (o *Oscillator) Render(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	step := 2 * math.Pi / o.sampleRate
	for i := range out {
		t := float64(o.elapsed) / o.sampleRate
		o.elapsed++

		s := 0.0
		for _, h := range o.harmonics {
			s += h.Weight * math.Sin(float64(h.Order)*o.phase)
		}
		out[i] = s

		o.phase += step * o.freq(t)
		// Wrapping at an exact multiple of 2*pi keeps every integer
		// harmonic continuous: sin(k*(phi - 2*pi)) == sin(k*phi).
		if o.phase > 2*math.Pi {
			o.phase -= 2 * math.Pi
		}
	}
	return out
}

// Reset rewinds the oscillator to its initial phase and time origin.
func (o *Oscillator) Reset() {
	o.phase = o.initPhase
	o.elapsed = 0
}

// Phase returns the current accumulator phase in radians.
func (o *Oscillator) Phase() float64 {
	return o.phase
}
