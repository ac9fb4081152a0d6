// Package buffer provides a reusable, sample-format generic buffer for
// allocation-friendly processing. Mixers keep one Buffer per output and
// resize it only when the processing window changes, so the steady-state
// processing path never allocates.
package buffer
