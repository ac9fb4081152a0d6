package buffer

import "github.com/cwbudde/algo-sound/dsp/core"

// Buffer wraps a slice of output samples with reuse-friendly semantics.
// T is the output sample representation (float64, float32, int16, ...).
type Buffer[T any] struct {
	samples []T
}

// New returns a zero-filled Buffer of the given length.
func New[T any](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{samples: make([]T, length)}
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[T]) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]T, n)
		copy(s, b.samples)
		b.samples = s
	}
	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Reset resizes the buffer to n samples and zeroes all of them,
// discarding any previous content.
func (b *Buffer[T]) Reset(n int) {
	b.Resize(n)
	b.Zero()
}

// Zero sets all samples to the zero value of T.
func (b *Buffer[T]) Zero() {
	core.Zero(b.samples)
}
