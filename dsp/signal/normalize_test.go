package signal

import (
	"testing"

	"github.com/cwbudde/algo-sound/internal/testutil"
)

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{-0.25, 0.5, -0.125}, 1e-15)
}

func TestNormalizeSilence(t *testing.T) {
	out, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0}, 0)
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative peak")
	}
}

func TestNormalizeDB(t *testing.T) {
	out, err := NormalizeDB([]float64{0.1, -0.2}, -6.0206)
	if err != nil {
		t.Fatalf("NormalizeDB() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0.25, -0.5}, 1e-4)
}
