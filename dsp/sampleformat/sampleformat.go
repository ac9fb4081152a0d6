// Package sampleformat converts the internal float64 sample into output
// representations. The neutral output value is the zero value of the
// target type.
package sampleformat

import (
	"math"

	"github.com/cwbudde/algo-sound/dsp/core"
)

const (
	maxInt16 = 1<<15 - 1
	maxInt24 = 1<<23 - 1
	maxInt32 = 1<<31 - 1
)

// Converter maps one internal sample to the output type T.
type Converter[T any] func(x float64) T

// Float64 returns x unchanged.
func Float64(x float64) float64 { return x }

// Float32 narrows x to float32 without clipping.
func Float32(x float64) float32 { return float32(x) }

// Int16 clips x to [-1, 1] and scales it to signed 16-bit PCM.
func Int16(x float64) int16 { return int16(quantize(x, maxInt16)) }

// Int24 clips x to [-1, 1] and scales it to signed 24-bit PCM held in an int32.
func Int24(x float64) int32 { return int32(quantize(x, maxInt24)) }

// Int32 clips x to [-1, 1] and scales it to signed 32-bit PCM.
func Int32(x float64) int32 { return int32(quantize(x, maxInt32)) }

// ToInt converts x to an integer PCM value of the given bit depth
// (16, 24 or 32). Other depths are treated as 16 bit.
func ToInt(x float64, bitDepth int) int {
	switch bitDepth {
	case 24:
		return int(quantize(x, maxInt24))
	case 32:
		return int(quantize(x, maxInt32))
	default:
		return int(quantize(x, maxInt16))
	}
}

// FromInt converts an integer PCM value of the given bit depth back to a sample.
func FromInt(v, bitDepth int) float64 {
	switch bitDepth {
	case 24:
		return float64(v) / maxInt24
	case 32:
		return float64(v) / maxInt32
	default:
		return float64(v) / maxInt16
	}
}

func quantize(x, full float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Round(core.Clamp(x, -1, 1) * full)
}
