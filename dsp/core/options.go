package core

import "math"

// EngineConfig defines settings shared by every synthesis stage.
type EngineConfig struct {
	SampleRate float64
	TargetPeak float64
}

// EngineOption mutates an EngineConfig.
type EngineOption func(*EngineConfig)

// DefaultEngineConfig returns the defaults used for offline asset generation:
// 44100 Hz mono with a 0.85 normalization peak.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SampleRate: 44100,
		TargetPeak: 0.85,
	}
}

// WithSampleRate sets the engine sample rate.
func WithSampleRate(sampleRate float64) EngineOption {
	return func(cfg *EngineConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithTargetPeak sets the default normalization peak amplitude.
func WithTargetPeak(peak float64) EngineOption {
	return func(cfg *EngineConfig) {
		if peak > 0 {
			cfg.TargetPeak = peak
		}
	}
}

// ApplyEngineOptions applies zero or more options to the default config.
func ApplyEngineOptions(opts ...EngineOption) EngineConfig {
	cfg := DefaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Samples returns the buffer length implied by a duration in seconds,
// rounded to the nearest sample. Non-positive durations yield 0.
func (c EngineConfig) Samples(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds * c.SampleRate))
}
