package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualFloat32(t *testing.T) {
	RequireSliceNearlyEqual(t, []float32{0.5, -0.25}, []float32{0.5, -0.25}, 0)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-13, 2}, 1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -1})
	RequireFinite(t, []float32{math.MaxFloat32})
}

func TestRequireSilent(t *testing.T) {
	RequireSilent(t, make([]int16, 8))
	RequireSilent(t, []float64{0, 0})
}
