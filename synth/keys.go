package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/osc"
)

// NoteToFreq converts a MIDI note number to frequency in Hz (A4 = 69 = 440).
func NoteToFreq(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12.0)
}

// PianoNote renders a piano-like tone: five phase-locked harmonics under a
// fast-attack exponential-decay envelope, scaled by amp.
func (k *Kit) PianoNote(freqHz, durationSec, amp float64) ([]float64, error) {
	n, err := k.samples(durationSec)
	if err != nil {
		return nil, err
	}
	if amp <= 0 || amp > 1 {
		return nil, fmt.Errorf("synth: note amplitude must be in (0, 1]: %f", amp)
	}

	o, err := osc.New(k.cfg.SampleRate,
		osc.WithFrequency(freqHz),
		osc.WithHarmonics(
			osc.Harmonic{Order: 1, Weight: 0.50},
			osc.Harmonic{Order: 2, Weight: 0.25},
			osc.Harmonic{Order: 3, Weight: 0.12},
			osc.Harmonic{Order: 4, Weight: 0.08},
			osc.Harmonic{Order: 6, Weight: 0.05},
		),
	)
	if err != nil {
		return nil, err
	}

	out := envelope.ApplyFunc(o.Render(n), k.cfg.SampleRate, envelope.ExpDecay(3.5, 60))
	for i := range out {
		out[i] *= amp
	}
	return out, nil
}
