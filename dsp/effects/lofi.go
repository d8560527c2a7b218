// Package effects implements post-processing colorations applied to
// finished mixes.
package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
)

const (
	defaultLoFiCutoffHz = 8000.0
	defaultLoFiDrive    = 1.3
	defaultLoFiLevel    = 0.77

	minLoFiDrive = 0.1
	maxLoFiDrive = 10.0
)

// LoFiOption mutates lo-fi construction parameters.
type LoFiOption func(*lofiConfig) error

type lofiConfig struct {
	cutoffHz float64
	drive    float64
	level    float64
}

func defaultLoFiConfig() lofiConfig {
	return lofiConfig{
		cutoffHz: defaultLoFiCutoffHz,
		drive:    defaultLoFiDrive,
		level:    defaultLoFiLevel,
	}
}

// WithLoFiCutoffHz sets the warmth lowpass cutoff.
func WithLoFiCutoffHz(cutoffHz float64) LoFiOption {
	return func(cfg *lofiConfig) error {
		if cutoffHz <= 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
			return fmt.Errorf("lofi cutoff must be > 0 and finite: %f", cutoffHz)
		}
		cfg.cutoffHz = cutoffHz
		return nil
	}
}

// WithLoFiDrive sets the saturation input gain.
func WithLoFiDrive(drive float64) LoFiOption {
	return func(cfg *lofiConfig) error {
		if drive < minLoFiDrive || drive > maxLoFiDrive || math.IsNaN(drive) {
			return fmt.Errorf("lofi drive must be in [%v, %v]: %f", minLoFiDrive, maxLoFiDrive, drive)
		}
		cfg.drive = drive
		return nil
	}
}

// WithLoFiLevel sets the post-saturation output level.
func WithLoFiLevel(level float64) LoFiOption {
	return func(cfg *lofiConfig) error {
		if level <= 0 || level > 1 || math.IsNaN(level) {
			return fmt.Errorf("lofi level must be in (0, 1]: %f", level)
		}
		cfg.level = level
		return nil
	}
}

// LoFi applies tape-style coloration to a finished mix: a gentle lowpass for
// warmth followed by tanh soft clipping.
type LoFi struct {
	sampleRate float64
	cfg        lofiConfig
}

// NewLoFi creates a lo-fi processor for the given sample rate.
func NewLoFi(sampleRate float64, opts ...LoFiOption) (*LoFi, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("lofi sample rate must be > 0: %f", sampleRate)
	}

	cfg := defaultLoFiConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &LoFi{sampleRate: sampleRate, cfg: cfg}, nil
}

// Process returns a colorized copy of in. Each call uses a fresh filter, so
// independent mixes never share settling state.
func (l *LoFi) Process(in []float64) ([]float64, error) {
	lp, err := onepole.NewLowpass(l.cfg.cutoffHz, l.sampleRate)
	if err != nil {
		return nil, err
	}

	out := lp.Process(in)
	for i, v := range out {
		out[i] = math.Tanh(v*l.cfg.drive) * l.cfg.level
	}
	return out, nil
}
