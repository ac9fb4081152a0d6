package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sound/dsp/core"
)

const twoPi = 2 * math.Pi

// Option configures a generator.
type Option func(*config) error

type config struct {
	amplitude float64
	phase     float64
	seed      int64
}

func defaultConfig() config {
	return config{amplitude: 1, seed: 1}
}

// WithAmplitude sets the peak output level. Must be finite and >= 0.
func WithAmplitude(amplitude float64) Option {
	return func(cfg *config) error {
		if amplitude < 0 || !core.IsFinite(amplitude) {
			return fmt.Errorf("signal: amplitude must be >= 0 and finite: %f", amplitude)
		}
		cfg.amplitude = amplitude
		return nil
	}
}

// WithPhase sets the start phase in radians.
func WithPhase(phase float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(phase) {
			return fmt.Errorf("signal: phase must be finite: %f", phase)
		}
		cfg.phase = math.Mod(phase, twoPi)
		if cfg.phase < 0 {
			cfg.phase += twoPi
		}
		return nil
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Waveform selects the shape of an Oscillator.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
)

// Oscillator is a phase-accumulating periodic generator.
type Oscillator struct {
	wave       Waveform
	sampleRate float64
	freqHz     float64
	amplitude  float64
	startPhase float64

	phase float64
	inc   float64
}

// NewOscillator creates an oscillator of the given waveform.
func NewOscillator(wave Waveform, freqHz, sampleRate float64, opts ...Option) (*Oscillator, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("signal: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if freqHz < 0 || !core.IsFinite(freqHz) {
		return nil, fmt.Errorf("signal: frequency must be >= 0 and finite: %f", freqHz)
	}
	if wave < WaveSine || wave > WaveSaw {
		return nil, fmt.Errorf("signal: unknown waveform %d", wave)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	o := &Oscillator{
		wave:       wave,
		sampleRate: sampleRate,
		freqHz:     freqHz,
		amplitude:  cfg.amplitude,
		startPhase: cfg.phase,
		phase:      cfg.phase,
	}
	o.updateIncrement()
	return o, nil
}

// NewSine creates a sine oscillator.
func NewSine(freqHz, sampleRate float64, opts ...Option) (*Oscillator, error) {
	return NewOscillator(WaveSine, freqHz, sampleRate, opts...)
}

// NewSquare creates a naive (non band-limited) square oscillator.
func NewSquare(freqHz, sampleRate float64, opts ...Option) (*Oscillator, error) {
	return NewOscillator(WaveSquare, freqHz, sampleRate, opts...)
}

// NewSaw creates a naive rising sawtooth oscillator.
func NewSaw(freqHz, sampleRate float64, opts ...Option) (*Oscillator, error) {
	return NewOscillator(WaveSaw, freqHz, sampleRate, opts...)
}

// Process returns the current sample and advances the phase by one step.
func (o *Oscillator) Process() float64 {
	var y float64
	switch o.wave {
	case WaveSquare:
		y = 1
		if o.phase >= math.Pi {
			y = -1
		}
	case WaveSaw:
		y = o.phase/math.Pi - 1
	default:
		y = math.Sin(o.phase)
	}

	o.phase += o.inc
	if o.phase >= twoPi {
		o.phase -= twoPi
	}

	return o.amplitude * y
}

// SetFrequency changes the oscillator frequency without resetting phase.
func (o *Oscillator) SetFrequency(freqHz float64) error {
	if freqHz < 0 || !core.IsFinite(freqHz) {
		return fmt.Errorf("signal: frequency must be >= 0 and finite: %f", freqHz)
	}
	o.freqHz = freqHz
	o.updateIncrement()
	return nil
}

// Reset restores the start phase.
func (o *Oscillator) Reset() {
	o.phase = o.startPhase
}

// Frequency returns the oscillator frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freqHz }

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// Amplitude returns the peak output level.
func (o *Oscillator) Amplitude() float64 { return o.amplitude }

// Phase returns the current phase in radians.
func (o *Oscillator) Phase() float64 { return o.phase }

func (o *Oscillator) updateIncrement() {
	o.inc = math.Mod(twoPi*o.freqHz/o.sampleRate, twoPi)
}
