package synth

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/mix"
	"github.com/cwbudde/algo-synth/dsp/osc"
	"github.com/cwbudde/algo-synth/dsp/signal"
)

// Normalization peaks for the quieter interface sounds.
const (
	clickPeak  = 0.80
	whooshPeak = 0.82
)

// CluePop renders a short bubble pop: a fast exponential sweep from 200 to
// 800 Hz with a sharp percussive envelope.
func (k *Kit) CluePop(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	o, err := osc.New(sr,
		osc.WithFrequencyFunc(osc.ExpSweep(200, 800, durationSec)),
		osc.WithHarmonics(
			osc.Harmonic{Order: 1, Weight: 0.7},
			osc.Harmonic{Order: 2, Weight: 0.2},
			osc.Harmonic{Order: 3, Weight: 0.1},
		),
	)
	if err != nil {
		return nil, err
	}

	out := envelope.ApplyFunc(o.Render(n), sr, envelope.ExpDecay(18, 200))
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// chimeNote places one tone of the success chime.
type chimeNote struct {
	startSec float64
	freqHz   float64
	amp      float64
}

// LandingChime renders a short triumphant chime: an ascending C-major
// arpeggio whose tones start in quick succession and ring out to the end of
// the buffer, overlaid additively rather than mixed and truncated.
func (k *Kit) LandingChime(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	notes := []chimeNote{
		{0.00, 523.25, 0.35},  // C5
		{0.15, 659.25, 0.35},  // E5
		{0.30, 783.99, 0.35},  // G5
		{0.50, 1046.50, 0.40}, // C6
	}

	out := make([]float64, n)
	for _, note := range notes {
		noteN := k.cfg.Samples(durationSec - note.startSec)
		if noteN <= 0 {
			continue
		}

		o, err := osc.New(sr,
			osc.WithFrequency(note.freqHz),
			osc.WithHarmonics(
				osc.Harmonic{Order: 1, Weight: 0.5},
				osc.Harmonic{Order: 2, Weight: 0.3},
				osc.Harmonic{Order: 3, Weight: 0.15},
				osc.Harmonic{Order: 4, Weight: 0.05},
			),
		)
		if err != nil {
			return nil, err
		}

		tone := envelope.ApplyFunc(o.Render(noteN), sr, envelope.ExpDecay(5, 80))
		mix.Overlay(out, tone, int(note.startSec*sr), note.amp)
	}

	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// CoinCollect renders a quick metallic ding from three inharmonic partials
// (E6 body, C7 sparkle, A5 undertone) with a very fast decay.
func (k *Kit) CoinCollect(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	partials := [][]float64{
		signal.Sine(1318.5, 1, sr, n),
		signal.Sine(2093.0, 1, sr, n),
		signal.Sine(880.0, 1, sr, n),
	}

	out, err := mix.Mix(partials, []float64{0.5, 0.3, 0.2})
	if err != nil {
		return nil, err
	}

	envelope.ApplyFunc(out, sr, envelope.ExpDecay(15, 300))
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// UIClick renders a soft neutral interface click: a filtered noise burst
// plus a very short 1200 Hz tonal component.
func (k *Kit) UIClick(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	burst, err := onepole.Bandpass(signal.Noise(seedClickNoise, n), 800, 4000, sr)
	if err != nil {
		return nil, err
	}
	envelope.ApplyFunc(burst, sr, envelope.ExpDecay(120, 1000))

	tone := signal.Sine(1200, 1, sr, n)
	envelope.ApplyFunc(tone, sr, func(t float64) float64 {
		return math.Exp(-t * 150)
	})

	out, err := mix.Mix([][]float64{burst, tone}, []float64{0.7, 0.4})
	if err != nil {
		return nil, err
	}
	return signal.Normalize(out, clickPeak), nil
}

// AltitudeWhoosh renders a rising whoosh: an exponential tone sweep from
// 300 to 1800 Hz blended with raw noise, shaped by a half-sine window so
// both ends are silent.
func (k *Kit) AltitudeWhoosh(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	o, err := osc.New(sr, osc.WithFrequencyFunc(osc.ExpSweep(300, 1800, durationSec)))
	if err != nil {
		return nil, err
	}
	tone := o.Render(n)

	out, err := mix.Mix([][]float64{tone, signal.Noise(seedWhooshNoise, n)}, []float64{0.4, 0.3})
	if err != nil {
		return nil, err
	}

	envelope.HannShape(out)
	return signal.Normalize(out, whooshPeak), nil
}

// BoostStart renders a power-up acceleration: a rich harmonic sweep from
// 200 to 1200 Hz with a growing high-band noise layer under a rising
// envelope that releases just before the end.
func (k *Kit) BoostStart(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	o, err := osc.New(sr,
		osc.WithFrequencyFunc(osc.ExpSweep(200, 1200, durationSec)),
		osc.WithHarmonics(
			osc.Harmonic{Order: 1, Weight: 0.45},
			osc.Harmonic{Order: 2, Weight: 0.30},
			osc.Harmonic{Order: 3, Weight: 0.15},
			osc.Harmonic{Order: 4, Weight: 0.10},
		),
	)
	if err != nil {
		return nil, err
	}
	tone := o.Render(n)

	hp, err := onepole.NewHighpass(800, sr)
	if err != nil {
		return nil, err
	}
	hiss := hp.Process(signal.Noise(seedBoostNoise, n))

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sr
		env := math.Sqrt(t/durationSec) * math.Exp(-(t-durationSec)*(t-durationSec)*8)
		if env < 0 {
			env = 0
		}
		noiseAmp := t / durationSec * 0.25
		out[i] = (tone[i]*0.75 + hiss[i]*noiseAmp) * env
	}
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}
