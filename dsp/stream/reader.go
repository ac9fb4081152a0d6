// Package stream adapts a channel to an io.Reader of little-endian float32
// PCM, the format audio backends such as oto pull from.
package stream

import (
	"encoding/binary"
	"errors"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-sound/dsp/channel"
)

// BytesPerSample is the encoded size of one mono float32 sample.
const BytesPerSample = 4

// ErrEmptyBlock is returned when the channel's processing window holds no
// samples, so no progress can be made.
var ErrEmptyBlock = errors.New("stream: channel produced an empty block")

// Reader pulls processing windows from a channel on demand. Read is not
// safe for concurrent use; the channel itself may still be edited
// concurrently.
type Reader struct {
	ch *channel.Channel[float32]

	block []float32
	pos   int

	frame   [BytesPerSample]byte
	partial int // bytes of frame not yet delivered
	samples atomic.Uint64
}

// NewReader returns a Reader that renders ch.
func NewReader(ch *channel.Channel[float32]) *Reader {
	return &Reader{ch: ch}
}

// Read fills p with encoded samples, running ch.Process whenever the
// current window is used up. A sample split across calls is completed on
// the next call. Read never returns io.EOF.
//
// If the channel's processing window was resized since the last call, the
// rest of the old window is dropped and reading resumes with a freshly
// processed window.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0

	cur := r.ch.Output()
	if len(cur) != len(r.block) {
		r.pos = len(cur)
	}
	r.block = cur

	if r.partial > 0 {
		c := copy(p, r.frame[BytesPerSample-r.partial:])
		r.partial -= c
		n += c
	}

	for n < len(p) {
		if r.pos >= len(r.block) {
			r.ch.Process()
			r.block = r.ch.Output()
			r.pos = 0
			if len(r.block) == 0 {
				return n, ErrEmptyBlock
			}
		}

		bits := math.Float32bits(r.block[r.pos])
		r.pos++
		r.samples.Add(1)

		if len(p)-n >= BytesPerSample {
			binary.LittleEndian.PutUint32(p[n:], bits)
			n += BytesPerSample
			continue
		}

		binary.LittleEndian.PutUint32(r.frame[:], bits)
		c := copy(p[n:], r.frame[:])
		r.partial = BytesPerSample - c
		n += c
	}

	return n, nil
}

// Samples returns the number of samples pulled from the channel so far.
// It may be called while another goroutine reads.
func (r *Reader) Samples() uint64 { return r.samples.Load() }
