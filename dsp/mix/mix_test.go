package mix

import (
	"errors"
	"testing"
)

func TestMixIdentity(t *testing.T) {
	in := []float64{0.1, -0.2, 0.3}

	out, err := Mix([][]float64{in}, []float64{1.0})
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}

	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("index %d: %v, want %v", i, out[i], in[i])
		}
	}
}

func TestMixUniformDefaultWeights(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{1, 1}

	out, err := Mix([][]float64{a, b}, nil)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}

	for i, v := range out {
		if v != 1 {
			t.Fatalf("index %d: %v, want 1 (0.5 + 0.5)", i, v)
		}
	}
}

func TestMixUnevenLengths(t *testing.T) {
	long := []float64{1, 1, 1, 1}
	short := []float64{1}

	out, err := Mix([][]float64{long, short}, []float64{1, 1})
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}

	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}
	if out[0] != 2 {
		t.Fatalf("out[0] = %v, want 2", out[0])
	}
	if out[3] != 1 {
		t.Fatalf("out[3] = %v, want 1 (short buffer pads with silence)", out[3])
	}
}

func TestMixNoInputs(t *testing.T) {
	out, err := Mix(nil, nil)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestMixWeightCountMismatch(t *testing.T) {
	_, err := Mix([][]float64{{1}, {1}}, []float64{1})
	if !errors.Is(err, ErrWeightCount) {
		t.Fatalf("err = %v, want ErrWeightCount", err)
	}
}

func TestMixDoesNotMutateInputs(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, 4}
	if _, err := Mix([][]float64{a, b}, []float64{0.5, 0.5}); err != nil {
		t.Fatalf("Mix: %v", err)
	}
	if a[0] != 1 || b[1] != 4 {
		t.Fatalf("inputs mutated: %v %v", a, b)
	}
}

func TestOverlayAdditivity(t *testing.T) {
	dst := make([]float64, 10)
	unit := []float64{1}

	Overlay(dst, unit, 4, 1.0)
	Overlay(dst, unit, 4, 1.0)

	if dst[4] != 2.0 {
		t.Fatalf("dst[4] = %v, want exactly 2.0", dst[4])
	}
}

func TestOverlayTruncation(t *testing.T) {
	dst := make([]float64, 4)
	Overlay(dst, []float64{1, 1, 1, 1}, 2, 1.0)

	if dst[2] != 1 || dst[3] != 1 {
		t.Fatalf("dst = %v, want overlay at 2 and 3", dst)
	}
	// Samples past the end were discarded without growing dst.
	if len(dst) != 4 {
		t.Fatalf("len = %d, want 4", len(dst))
	}
}

func TestOverlayGain(t *testing.T) {
	dst := make([]float64, 2)
	Overlay(dst, []float64{1, 1}, 0, 0.25)

	if dst[0] != 0.25 || dst[1] != 0.25 {
		t.Fatalf("dst = %v, want [0.25 0.25]", dst)
	}
}
