// Package wavout writes rendered sample blocks to mono PCM WAV files and
// reads them back.
package wavout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-sound/dsp/sampleformat"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	defaultSampleRate = 48000
	defaultBitDepth   = 16

	pcmFormat = 1
)

// ErrInvalidFile is returned by Read for input that is not a PCM WAV stream.
var ErrInvalidFile = errors.New("wavout: not a valid PCM wav stream")

// Option configures Write.
type Option func(*config) error

type config struct {
	sampleRate int
	bitDepth   int
}

// WithSampleRate sets the sample rate in Hz. Default 48000.
func WithSampleRate(rate int) Option {
	return func(c *config) error {
		if rate <= 0 {
			return fmt.Errorf("wavout: sample rate must be > 0: %d", rate)
		}
		c.sampleRate = rate
		return nil
	}
}

// WithBitDepth sets the PCM bit depth: 16, 24 or 32. Default 16.
func WithBitDepth(bits int) Option {
	return func(c *config) error {
		switch bits {
		case 16, 24, 32:
			c.bitDepth = bits
			return nil
		default:
			return fmt.Errorf("wavout: unsupported bit depth: %d", bits)
		}
	}
}

// Write encodes samples as a mono PCM WAV stream. Samples are clipped to
// [-1, 1] before quantization.
func Write(w io.WriteSeeker, samples []float64, opts ...Option) error {
	cfg := config{sampleRate: defaultSampleRate, bitDepth: defaultBitDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	data := make([]int, len(samples))
	for i, x := range samples {
		data[i] = sampleformat.ToInt(x, cfg.bitDepth)
	}

	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: cfg.sampleRate, NumChannels: 1},
		SourceBitDepth: cfg.bitDepth,
	}

	enc := wav.NewEncoder(w, cfg.sampleRate, cfg.bitDepth, 1, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavout: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavout: finalize: %w", err)
	}

	return nil
}

// WriteFile creates path and writes samples to it.
func WriteFile(path string, samples []float64, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavout: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("wavout: %w", cerr)
		}
	}()

	return Write(f, samples, opts...)
}

// Read decodes a PCM WAV stream and returns its samples and sample rate.
// Multi-channel streams are averaged down to mono.
func Read(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if dec.WavAudioFormat != pcmFormat {
		return nil, 0, fmt.Errorf("%w: audio format %d", ErrInvalidFile, dec.WavAudioFormat)
	}

	channels := max(buf.Format.NumChannels, 1)
	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		sum := 0.0
		for c := range channels {
			sum += sampleformat.FromInt(buf.Data[i*channels+c], buf.SourceBitDepth)
		}
		out[i] = sum / float64(channels)
	}

	return out, buf.Format.SampleRate, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wavout: %w", err)
	}
	defer f.Close()

	return Read(f)
}
