package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sound/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 || !core.IsFinite(targetPeak) {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, errors.New("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}

// NormalizeDB scales data so that its peak sits at peakDB (dBFS).
func NormalizeDB(data []float64, peakDB float64) ([]float64, error) {
	if !core.IsFinite(peakDB) {
		return nil, fmt.Errorf("normalize peak must be finite: %f", peakDB)
	}
	return Normalize(data, core.DBToLinear(peakDB))
}
