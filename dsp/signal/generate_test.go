package signal

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestNoiseDeterminism(t *testing.T) {
	a := Noise(42, 4096)
	b := Noise(42, 4096)

	if len(a) != 4096 {
		t.Fatalf("len = %d, want 4096", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestNoiseRange(t *testing.T) {
	for _, v := range Noise(7, 10000) {
		if v < -1 || v > 1 {
			t.Fatalf("sample %v outside [-1, 1]", v)
		}
	}
}

func TestNoiseEmpty(t *testing.T) {
	if got := Noise(1, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
	if got := Noise(1, -5); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestNoiseSeedIndependence(t *testing.T) {
	a := Noise(1, 16384)
	b := Noise(2, 16384)

	r := stat.Correlation(a, b, nil)
	if math.Abs(r) > 0.05 {
		t.Fatalf("correlation between seeds = %v, want ~0", r)
	}
}

func TestSineFirstSampleAndPeak(t *testing.T) {
	s := Sine(440, 1.0, 44100, 44100)

	if len(s) != 44100 {
		t.Fatalf("len = %d, want 44100", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("first sample = %v, want 0", s[0])
	}

	peak := 0.0
	for _, v := range s {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-1.0) > 1e-6 {
		t.Fatalf("peak = %v, want 1.0", peak)
	}
}

func TestNormalizePeak(t *testing.T) {
	in := []float64{0.1, -0.4, 0.2}
	out := Normalize(in, 0.85)

	peak := 0.0
	for _, v := range out {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-0.85) > 1e-6 {
		t.Fatalf("peak = %v, want 0.85", peak)
	}

	// Input must not be mutated.
	if in[1] != -0.4 {
		t.Fatalf("input mutated: %v", in[1])
	}
}

func TestNormalizeSilentUnchanged(t *testing.T) {
	in := make([]float64, 100)
	out := Normalize(in, 0.85)

	for i, v := range out {
		if v != 0 {
			t.Fatalf("index %d: %v, want 0", i, v)
		}
	}
}
