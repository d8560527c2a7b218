package core

import "testing"

func TestApplyEngineOptions(t *testing.T) {
	cfg := ApplyEngineOptions(WithSampleRate(48000), WithTargetPeak(0.5))
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want 48000", cfg.SampleRate)
	}
	if cfg.TargetPeak != 0.5 {
		t.Fatalf("target peak = %v, want 0.5", cfg.TargetPeak)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyEngineOptions(WithSampleRate(0), WithTargetPeak(-1))
	def := DefaultEngineConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestSamplesRounding(t *testing.T) {
	cfg := DefaultEngineConfig()

	cases := []struct {
		seconds float64
		want    int
	}{
		{1.0, 44100},
		{0.25, 11025},
		{0.06, 2646},
		{0, 0},
		{-1, 0},
	}
	for _, tc := range cases {
		if got := cfg.Samples(tc.seconds); got != tc.want {
			t.Fatalf("Samples(%v) = %d, want %d", tc.seconds, got, tc.want)
		}
	}
}
