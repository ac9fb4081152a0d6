// Package biquad provides second-order IIR filter sections usable as
// per-sample modifiers in a sound's effect chain.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Its ProcessSample method
// satisfies block.Modifier. RBJ cookbook designs for lowpass, highpass and
// bandpass responses are included.
package biquad
