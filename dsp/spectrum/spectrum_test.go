package spectrum

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	return out
}

func TestDominantFrequencyPureSine(t *testing.T) {
	const sampleRate = 44100.0

	got, err := DominantFrequency(sine(440, sampleRate, 16384), sampleRate)
	if err != nil {
		t.Fatalf("DominantFrequency: %v", err)
	}

	binWidth := sampleRate / 16384
	if math.Abs(got-440) > binWidth {
		t.Fatalf("dominant frequency = %v, want 440 +/- %v", got, binWidth)
	}
}

func TestBandEnergySeparation(t *testing.T) {
	const sampleRate = 44100.0
	s := sine(440, sampleRate, 16384)

	inBand, err := BandEnergy(s, sampleRate, 300, 600)
	if err != nil {
		t.Fatalf("BandEnergy: %v", err)
	}
	outBand, err := BandEnergy(s, sampleRate, 5000, 10000)
	if err != nil {
		t.Fatalf("BandEnergy: %v", err)
	}

	if inBand < 100*outBand {
		t.Fatalf("in-band energy %v not dominant over out-of-band %v", inBand, outBand)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	_, _, err := Analyze(nil, 44100)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestMagnitude(t *testing.T) {
	mags := Magnitude([]complex128{complex(3, 4), complex(0, 1)})
	if math.Abs(mags[0]-5) > 1e-12 {
		t.Fatalf("mags[0] = %v, want 5", mags[0])
	}
	if math.Abs(mags[1]-1) > 1e-12 {
		t.Fatalf("mags[1] = %v, want 1", mags[1])
	}
}
