// Package signal provides deterministic raw-signal sources and peak
// normalization for offline synthesis.
//
// Every source is a pure function of its parameters: identical inputs yield
// bit-identical output. Randomness is always driven by an explicit seed so
// asset generation is reproducible across runs and machines.
package signal

import (
	"math"
	"math/rand"
)

// silenceFloor is the peak below which a buffer is treated as silent.
// Normalizing such a buffer would only amplify numerical noise.
const silenceFloor = 1e-9

// Noise generates n uniform white-noise samples in [-1, 1] from a seeded
// deterministic stream. Two calls with the same seed and length produce
// identical output. n <= 0 yields an empty buffer.
func Noise(seed int64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// Sine generates n samples of a fixed-frequency sine wave.
func Sine(freqHz, amplitude, sampleRate float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Normalize rescales data so its peak absolute value equals targetPeak and
// returns a new slice. A near-silent input (peak below 1e-9) is returned
// as-is: rescaling it would amplify rounding noise into audible hiss.
func Normalize(data []float64, targetPeak float64) []float64 {
	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	if maxAbs < silenceFloor {
		return data
	}

	scale := targetPeak / maxAbs
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v * scale
	}
	return out
}
