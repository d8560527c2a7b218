package synth

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/signal"
)

// Kick renders a kick drum: a sine with a fast downward pitch sweep from
// 150 Hz plus a click transient, under a sharp exponential decay.
func (k *Kit) Kick(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sr
		freq := 150.0 * math.Exp(-t*20)
		env := math.Exp(-t * 18)
		s := math.Sin(2 * math.Pi * freq * t)
		click := math.Exp(-t*200) * 0.5
		out[i] = (s + click) * env
	}
	return out, nil
}

// Snare renders a snare drum: bandpassed noise plus a decaying 200 Hz body
// tone.
func (k *Kit) Snare(durationSec float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	rattle, err := onepole.Bandpass(signal.Noise(seedSnareNoise, n), 800, 5000, sr)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	phase := 0.0
	step := 2 * math.Pi * 200.0 / sr
	for i := range out {
		t := float64(i) / sr
		env := math.Exp(-t * 25)
		tone := math.Sin(phase) * 0.3
		out[i] = (rattle[i]*0.7 + tone) * env * 0.6
		phase += step
	}
	return out, nil
}

// HiHat decay rates; the open hat uses the faster rate over a longer buffer.
const (
	closedHatDecayRate = 20.0
	openHatDecayRate   = 120.0
	hatGain            = 0.4
)

// HiHat renders a hi-hat from narrow high-band noise with an exponential
// decay. Typical durations are 0.08 s closed and 0.15 s open.
func (k *Kit) HiHat(durationSec float64, open bool) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	sr := k.cfg.SampleRate

	band, err := onepole.Bandpass(signal.Noise(seedHatNoise, n), 6000, 16000, sr)
	if err != nil {
		return nil, err
	}

	rate := closedHatDecayRate
	if open {
		rate = openHatDecayRate
	}

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sr
		out[i] = band[i] * math.Exp(-t*rate) * hatGain
	}
	return out, nil
}
