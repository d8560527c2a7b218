package synth

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/mix"
	"github.com/cwbudde/algo-synth/dsp/osc"
	"github.com/cwbudde/algo-synth/dsp/signal"
)

// BiplaneEngine renders a low rumbling, puttering piston drone. The
// fundamental wanders between 75 and 115 Hz with a slow modulation plus a
// per-sample seeded jitter that mimics engine miss.
func (k *Kit) BiplaneEngine(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	jitter := rand.New(rand.NewSource(seedBiplaneJitter))
	freqFn := func(t float64) float64 {
		base := 95.0 + 20.0*math.Sin(2*math.Pi*0.7*t)
		irregularity := 1.0 + 0.08*math.Sin(2*math.Pi*3.1*t) + 0.03*(jitter.Float64()*2-1)
		return base * irregularity
	}

	o, err := osc.New(sr,
		osc.WithFrequencyFunc(freqFn),
		osc.WithHarmonics(
			osc.Harmonic{Order: 1, Weight: 0.5},
			osc.Harmonic{Order: 2, Weight: 0.25},
			osc.Harmonic{Order: 3, Weight: 0.15},
			osc.Harmonic{Order: 4, Weight: 0.08},
			osc.Harmonic{Order: 6, Weight: 0.04},
		),
	)
	if err != nil {
		return nil, err
	}
	tone := o.Render(n)

	lp, err := onepole.NewLowpass(200, sr)
	if err != nil {
		return nil, err
	}
	rumble := lp.Process(signal.Noise(seedBiplaneRumble, n))

	out, err := mix.Mix([][]float64{tone, rumble}, []float64{0.75, 0.15})
	if err != nil {
		return nil, err
	}

	// Putter: slow amplitude modulation at one firing per ~70 ms.
	envelope.ApplyFunc(out, sr, func(t float64) float64 {
		return 0.85 + 0.15*math.Sin(2*math.Pi*14.0*t)
	})

	if _, err := envelope.AttackRelease(out, 0.05, 0.05, sr); err != nil {
		return nil, err
	}
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// PropEngine renders a smoother propeller drone: a steady 175 Hz hum with
// rich harmonics, gentle amplitude modulation and a slight noise floor.
func (k *Kit) PropEngine(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	o, err := osc.New(sr,
		osc.WithFrequencyFunc(func(t float64) float64 {
			return 175.0 + 8.0*math.Sin(2*math.Pi*0.4*t)
		}),
		osc.WithHarmonics(
			osc.Harmonic{Order: 1, Weight: 0.45},
			osc.Harmonic{Order: 2, Weight: 0.30},
			osc.Harmonic{Order: 3, Weight: 0.15},
			osc.Harmonic{Order: 4, Weight: 0.07},
			osc.Harmonic{Order: 5, Weight: 0.03},
		),
	)
	if err != nil {
		return nil, err
	}
	tone := o.Render(n)

	envelope.ApplyFunc(tone, sr, func(t float64) float64 {
		return 0.92 + 0.08*math.Sin(2*math.Pi*8.5*t)
	})

	lp, err := onepole.NewLowpass(400, sr)
	if err != nil {
		return nil, err
	}
	floor := lp.Process(signal.Noise(seedPropFloor, n))

	out, err := mix.Mix([][]float64{tone, floor}, []float64{0.88, 0.08})
	if err != nil {
		return nil, err
	}

	if _, err := envelope.AttackRelease(out, 0.05, 0.05, sr); err != nil {
		return nil, err
	}
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// BomberEngine renders a deep throbbing rumble from four slightly detuned
// engine stacks whose beat frequencies create the characteristic heavy drone.
func (k *Kit) BomberEngine(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	baseFreqs := []float64{68, 72, 76, 80}
	initPhases := []float64{0, 0.5, 1.0, 1.5}

	stacks := make([][]float64, len(baseFreqs))
	weights := make([]float64, len(baseFreqs))
	for i := range baseFreqs {
		base := baseFreqs[i]
		idx := float64(i)
		o, err := osc.New(sr,
			osc.WithFrequencyFunc(func(t float64) float64 {
				return base + 3.0*math.Sin(2*math.Pi*0.3*t+idx)
			}),
			osc.WithInitialPhase(initPhases[i]),
			osc.WithHarmonics(
				osc.Harmonic{Order: 1, Weight: 0.5},
				osc.Harmonic{Order: 2, Weight: 0.25},
				osc.Harmonic{Order: 3, Weight: 0.12},
				osc.Harmonic{Order: 4, Weight: 0.08},
			),
		)
		if err != nil {
			return nil, err
		}
		stacks[i] = o.Render(n)
		weights[i] = 0.25
	}

	tone, err := mix.Mix(stacks, weights)
	if err != nil {
		return nil, err
	}

	envelope.ApplyFunc(tone, sr, func(t float64) float64 {
		return 0.80 + 0.20*math.Sin(2*math.Pi*6.0*t)
	})

	lp, err := onepole.NewLowpass(150, sr)
	if err != nil {
		return nil, err
	}
	rumble := lp.Process(signal.Noise(seedBomberRumble, n))

	out, err := mix.Mix([][]float64{tone, rumble}, []float64{0.82, 0.12})
	if err != nil {
		return nil, err
	}

	if _, err := envelope.AttackRelease(out, 0.08, 0.08, sr); err != nil {
		return nil, err
	}
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// JetEngine renders a high broadband whoosh: double-bandpassed noise over a
// turbine whine and a low rumble, with a fast shimmer modulation.
func (k *Kit) JetEngine(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	broadband := signal.Noise(seedJetBroadband, n)
	band, err := onepole.Bandpass(broadband, 2000, 6000, sr)
	if err != nil {
		return nil, err
	}
	// Second, wider pass sharpens the band edges.
	band, err = onepole.Bandpass(band, 1500, 8000, sr)
	if err != nil {
		return nil, err
	}

	o, err := osc.New(sr,
		osc.WithFrequencyFunc(func(t float64) float64 {
			return 820.0 + 30.0*math.Sin(2*math.Pi*0.6*t)
		}),
		osc.WithHarmonics(
			osc.Harmonic{Order: 1, Weight: 0.3},
			osc.Harmonic{Order: 2, Weight: 0.15},
		),
	)
	if err != nil {
		return nil, err
	}
	whine := o.Render(n)

	lp, err := onepole.NewLowpass(120, sr)
	if err != nil {
		return nil, err
	}
	rumble := lp.Process(signal.Noise(seedJetRumble, n))

	out, err := mix.Mix([][]float64{band, whine, rumble}, []float64{0.55, 0.25, 0.15})
	if err != nil {
		return nil, err
	}

	envelope.ApplyFunc(out, sr, func(t float64) float64 {
		return 0.93 + 0.07*math.Sin(2*math.Pi*47.0*t)
	})

	if _, err := envelope.AttackRelease(out, 0.06, 0.06, sr); err != nil {
		return nil, err
	}
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// RocketEngine renders an intense layered roar: wideband noise, mid-range
// crackle and an infrasonic rumble under a combustion-instability flutter.
func (k *Kit) RocketEngine(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	lp, err := onepole.NewLowpass(3000, sr)
	if err != nil {
		return nil, err
	}
	roar := lp.Process(signal.Noise(seedRocketRoar, n))

	crackle, err := onepole.Bandpass(signal.Noise(seedRocketCrackle, n), 300, 1200, sr)
	if err != nil {
		return nil, err
	}

	o, err := osc.New(sr,
		osc.WithFrequencyFunc(func(t float64) float64 {
			return 45.0 + 10.0*math.Sin(2*math.Pi*0.8*t)
		}),
		osc.WithHarmonics(
			osc.Harmonic{Order: 1, Weight: 0.6},
			osc.Harmonic{Order: 2, Weight: 0.3},
			osc.Harmonic{Order: 3, Weight: 0.1},
		),
	)
	if err != nil {
		return nil, err
	}
	rumble := o.Render(n)

	out, err := mix.Mix([][]float64{roar, crackle, rumble}, []float64{0.45, 0.30, 0.25})
	if err != nil {
		return nil, err
	}

	envelope.ApplyFunc(out, sr, func(t float64) float64 {
		return 0.88 + 0.12*(0.5*math.Sin(2*math.Pi*23.0*t)+0.5*math.Sin(2*math.Pi*37.0*t))
	})

	if _, err := envelope.AttackRelease(out, 0.04, 0.04, sr); err != nil {
		return nil, err
	}
	return signal.Normalize(out, k.cfg.TargetPeak), nil
}

// windPeak keeps the ambience bed quieter than the engine drones.
const windPeak = 0.6

// Wind renders a soft atmospheric breeze: two filtered noise layers under a
// slow two-component gust modulation.
func (k *Kit) Wind(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	lp, err := onepole.NewLowpass(400, sr)
	if err != nil {
		return nil, err
	}
	low := lp.Process(signal.Noise(seedWindLow, n))

	mid, err := onepole.Bandpass(signal.Noise(seedWindMid, n), 200, 1200, sr)
	if err != nil {
		return nil, err
	}

	out, err := mix.Mix([][]float64{low, mid}, []float64{0.65, 0.35})
	if err != nil {
		return nil, err
	}

	envelope.ApplyFunc(out, sr, func(t float64) float64 {
		return 0.75 + 0.15*math.Sin(2*math.Pi*0.3*t) + 0.10*math.Sin(2*math.Pi*0.7*t+1.2)
	})

	if _, err := envelope.AttackRelease(out, 0.15, 0.15, sr); err != nil {
		return nil, err
	}
	return signal.Normalize(out, windPeak), nil
}
