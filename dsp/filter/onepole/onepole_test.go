package onepole

import (
	"math"
	"testing"
)

func TestLowpassDCSettling(t *testing.T) {
	const (
		sampleRate = 44100.0
		cutoff     = 200.0
	)
	lp, err := NewLowpass(cutoff, sampleRate)
	if err != nil {
		t.Fatalf("NewLowpass: %v", err)
	}

	// Feed unit DC for many time constants; output must approach unity gain.
	n := int(math.Floor(20 * sampleRate / (2 * math.Pi * cutoff)))
	y := 0.0
	for range n {
		y = lp.ProcessSample(1.0)
	}
	if math.Abs(y-1.0) > 1e-6 {
		t.Fatalf("settled output = %v, want ~1.0", y)
	}
}

func TestLowpassStartsFromZeroState(t *testing.T) {
	lp, err := NewLowpass(1000, 44100)
	if err != nil {
		t.Fatalf("NewLowpass: %v", err)
	}

	first := lp.ProcessSample(1.0)
	if first >= 1.0 || first <= 0 {
		t.Fatalf("first sample = %v, want settling transient in (0, 1)", first)
	}
}

func TestHighpassBlocksDC(t *testing.T) {
	hp, err := NewHighpass(100, 44100)
	if err != nil {
		t.Fatalf("NewHighpass: %v", err)
	}

	in := make([]float64, 44100)
	for i := range in {
		in[i] = 1.0
	}
	out := hp.Process(in)

	if math.Abs(out[len(out)-1]) > 1e-3 {
		t.Fatalf("DC leakage = %v, want ~0", out[len(out)-1])
	}
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	lp, err := NewLowpass(500, 44100)
	if err != nil {
		t.Fatalf("NewLowpass: %v", err)
	}

	in := []float64{1, -1, 1, -1}
	_ = lp.Process(in)
	if in[0] != 1 || in[1] != -1 {
		t.Fatalf("input mutated: %#v", in)
	}
}

func TestReset(t *testing.T) {
	lp, err := NewLowpass(500, 44100)
	if err != nil {
		t.Fatalf("NewLowpass: %v", err)
	}

	a := lp.Process([]float64{1, 1, 1, 1})
	lp.Reset()
	b := lp.Process([]float64{1, 1, 1, 1})

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v after reset", i, b[i], a[i])
		}
	}
}

func TestBandpassCascadeOrder(t *testing.T) {
	in := []float64{1, 0, 0, 0, 0, 0, 0, 0}

	got, err := Bandpass(in, 300, 3000, 44100)
	if err != nil {
		t.Fatalf("Bandpass: %v", err)
	}

	lp, _ := NewLowpass(3000, 44100)
	hp, _ := NewHighpass(300, 44100)
	want := hp.Process(lp.Process(in))

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: %v != %v (lowpass must run first)", i, got[i], want[i])
		}
	}
}

func TestConstructionErrors(t *testing.T) {
	if _, err := NewLowpass(0, 44100); err == nil {
		t.Fatal("expected error for zero cutoff")
	}
	if _, err := NewHighpass(100, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := Bandpass(nil, 5000, 100, 44100); err == nil {
		t.Fatal("expected error for inverted band edges")
	}
}
