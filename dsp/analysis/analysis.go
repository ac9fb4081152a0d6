package analysis

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-sound/dsp/core"
	"github.com/cwbudde/algo-sound/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmpty is returned when a measurement needs at least one sample.
	ErrEmpty = errors.New("analysis: no samples")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("analysis: sample rate must be positive and finite")
)

// Summary collects the level and pitch measurements of one block.
type Summary struct {
	Peak              float64
	PeakDB            float64
	RMS               float64
	RMSDB             float64
	DominantFrequency float64
}

// Peak returns the largest absolute sample value, or 0 for an empty slice.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return vecmath.MaxAbs(samples)
}

// RMS returns the root-mean-square level, or 0 for an empty slice.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(samples, samples) / float64(len(samples)))
}

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak. The block mean is removed before it is Hann-windowed and
// zero-padded to a power of two; the peak is refined by parabolic
// interpolation of the log power. A silent block yields 0.
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmpty
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	fftSize := nextPowerOf2(max(len(samples), 2))
	coeffs := window.Generate(window.TypeHann, len(samples))

	mean := vecmath.Sum(samples) / float64(len(samples))

	in := make([]complex128, fftSize)
	for i, x := range samples {
		in[i] = complex((x-mean)*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("analysis: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("analysis: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	peak := 1
	for k := 2; k < bins; k++ {
		if power[k] > power[peak] {
			peak = k
		}
	}
	if power[peak] == 0 {
		return 0, nil
	}

	binHz := sampleRate / float64(fftSize)
	return (float64(peak) + interpolate(power, peak)) * binHz, nil
}

// Summarize measures samples at sampleRate.
func Summarize(samples []float64, sampleRate float64) (Summary, error) {
	freq, err := DominantFrequency(samples, sampleRate)
	if err != nil {
		return Summary{}, err
	}

	peak := Peak(samples)
	rms := RMS(samples)

	return Summary{
		Peak:              peak,
		PeakDB:            core.LinearToDB(peak),
		RMS:               rms,
		RMSDB:             core.LinearToDB(rms),
		DominantFrequency: freq,
	}, nil
}

// interpolate returns the fractional bin offset of the true peak near k,
// in [-0.5, 0.5].
func interpolate(power []float64, k int) float64 {
	if k <= 0 || k >= len(power)-1 {
		return 0
	}
	if power[k-1] <= 0 || power[k+1] <= 0 {
		return 0
	}

	a := math.Log(power[k-1])
	b := math.Log(power[k])
	c := math.Log(power[k+1])

	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	return core.Clamp(0.5*(a-c)/den, -0.5, 0.5)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
