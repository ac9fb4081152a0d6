// Package analysis measures rendered sample blocks: peak and RMS level and
// the dominant frequency of a windowed FFT.
package analysis
