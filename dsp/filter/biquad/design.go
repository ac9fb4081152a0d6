package biquad

import (
	"fmt"
	"math"
)

const defaultQ = 1 / math.Sqrt2

// Lowpass designs an RBJ lowpass at freq (Hz) with quality factor q.
// Invalid frequencies yield zero coefficients (silence).
func Lowpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * normalizedQ(q))

	return normalize((1-cw)/2, 1-cw, (1-cw)/2, 1+alpha, -2*cw, 1-alpha)
}

// Highpass designs an RBJ highpass at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * normalizedQ(q))

	return normalize((1+cw)/2, -(1 + cw), (1+cw)/2, 1+alpha, -2*cw, 1-alpha)
}

// Bandpass designs a constant-skirt-gain bandpass.
func Bandpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}

	sw := math.Sin(w0)
	alpha := sw / (2 * normalizedQ(q))

	return normalize(sw/2, 0, -sw/2, 1+alpha, -2*math.Cos(w0), 1-alpha)
}

// NewLowpass returns a lowpass Section, rejecting frequencies outside (0, Nyquist).
func NewLowpass(freq, q, sampleRate float64) (*Section, error) {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return nil, fmt.Errorf("biquad: lowpass frequency %f out of range for sample rate %f", freq, sampleRate)
	}
	return NewSection(Lowpass(freq, q, sampleRate)), nil
}

// NewHighpass returns a highpass Section, rejecting frequencies outside (0, Nyquist).
func NewHighpass(freq, q, sampleRate float64) (*Section, error) {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return nil, fmt.Errorf("biquad: highpass frequency %f out of range for sample rate %f", freq, sampleRate)
	}
	return NewSection(Highpass(freq, q, sampleRate)), nil
}

// MagnitudeAt returns |H(e^jw)| of c at freq (Hz).
func (c Coefficients) MagnitudeAt(freq, sampleRate float64) float64 {
	w := 2 * math.Pi * freq / sampleRate
	z1 := complex(math.Cos(w), -math.Sin(w))
	z2 := z1 * z1
	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	h := num / den
	return math.Hypot(real(h), imag(h))
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
