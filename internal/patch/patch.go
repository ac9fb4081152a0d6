// Package patch assembles the demo voices rendered and played by the
// commands: a sine voice with optional tremolo and a band-limited noise
// voice.
package patch

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sound/dsp/block"
	"github.com/cwbudde/algo-sound/dsp/channel"
	"github.com/cwbudde/algo-sound/dsp/core"
	"github.com/cwbudde/algo-sound/dsp/filter/biquad"
	"github.com/cwbudde/algo-sound/dsp/sampleformat"
	"github.com/cwbudde/algo-sound/dsp/signal"
	"github.com/cwbudde/algo-sound/dsp/sound"
)

var errNoVoices = errors.New("patch: both voices are disabled")

// Config describes the voices of a patch. A zero Amplitude disables the
// sine voice and a zero Noise disables the noise voice.
type Config struct {
	SampleRate float64

	// Sine voice.
	Frequency    float64
	Amplitude    float64
	TremoloRate  float64 // Hz, 0 disables tremolo
	TremoloDepth float64 // 0..1

	// Noise voice, shaped by a lowpass followed by a highpass.
	Noise      float64
	LowpassHz  float64
	HighpassHz float64
	Seed       int64

	// Gain is the channel gain applied to the mix.
	Gain float64
}

// DefaultConfig returns a 440 Hz sine over filtered noise at 48 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:   core.DefaultProcessorConfig().SampleRate,
		Frequency:    440,
		Amplitude:    0.5,
		TremoloDepth: 0.5,
		Noise:        0.5,
		LowpassHz:    440,
		HighpassHz:   220,
		Seed:         1,
		Gain:         0.5,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0 || !core.IsFinite(c.SampleRate):
		return fmt.Errorf("patch: invalid sample rate: %v", c.SampleRate)
	case c.Amplitude < 0 || !core.IsFinite(c.Amplitude):
		return fmt.Errorf("patch: invalid amplitude: %v", c.Amplitude)
	case c.Noise < 0 || !core.IsFinite(c.Noise):
		return fmt.Errorf("patch: invalid noise level: %v", c.Noise)
	case c.TremoloRate < 0 || !core.IsFinite(c.TremoloRate):
		return fmt.Errorf("patch: invalid tremolo rate: %v", c.TremoloRate)
	case c.TremoloDepth < 0 || c.TremoloDepth > 1:
		return fmt.Errorf("patch: tremolo depth must be in [0, 1]: %v", c.TremoloDepth)
	case !core.IsFinite(c.Gain):
		return fmt.Errorf("patch: invalid gain: %v", c.Gain)
	case c.Amplitude == 0 && c.Noise == 0:
		return errNoVoices
	}
	return nil
}

// Patch holds the voices built from a Config. All voices share one arena.
type Patch struct {
	Arena  *block.Arena
	Tone   *sound.Sound // nil when disabled
	Noise  *sound.Sound // nil when disabled
	config Config
}

// Build validates cfg and creates its voices.
func Build(cfg Config) (*Patch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Patch{Arena: block.NewArena(), config: cfg}

	if cfg.Amplitude > 0 {
		tone, err := p.buildTone()
		if err != nil {
			return nil, err
		}
		p.Tone = tone
	}

	if cfg.Noise > 0 {
		noise, err := p.buildNoise()
		if err != nil {
			return nil, err
		}
		p.Noise = noise
	}

	return p, nil
}

func (p *Patch) buildTone() (*sound.Sound, error) {
	cfg := p.config

	osc, err := signal.NewSine(cfg.Frequency, cfg.SampleRate, signal.WithAmplitude(cfg.Amplitude))
	if err != nil {
		return nil, fmt.Errorf("patch: tone: %w", err)
	}

	s, err := sound.New(p.Arena, p.Arena.Add(block.FromGenerator(osc)))
	if err != nil {
		return nil, err
	}

	if cfg.TremoloRate > 0 && cfg.TremoloDepth > 0 {
		lfo, err := signal.NewSine(cfg.TremoloRate, cfg.SampleRate, signal.WithAmplitude(cfg.TremoloDepth/2))
		if err != nil {
			return nil, fmt.Errorf("patch: tremolo: %w", err)
		}

		// Gain swings between 1-depth and 1.
		offset := 1 - cfg.TremoloDepth/2
		env := block.GeneratorFunc(func() float64 { return offset + lfo.Process() })

		trem := block.New(env, block.Passthrough{}, block.MultiplyInteractor())
		if err := s.AddModifier(p.Arena.Add(trem)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (p *Patch) buildNoise() (*sound.Sound, error) {
	cfg := p.config

	noise, err := signal.NewNoise(signal.WithAmplitude(cfg.Noise), signal.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("patch: noise: %w", err)
	}
	lp, err := biquad.NewLowpass(cfg.LowpassHz, 1, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("patch: lowpass: %w", err)
	}
	hp, err := biquad.NewHighpass(cfg.HighpassHz, 1, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("patch: highpass: %w", err)
	}

	s, err := sound.New(p.Arena, p.Arena.Add(block.FromGenerator(noise)))
	if err != nil {
		return nil, err
	}
	err = s.ExtendModifiers(
		p.Arena.Add(block.FromModifier(lp)),
		p.Arena.Add(block.FromModifier(hp)),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Voices returns the enabled voices, tone first.
func (p *Patch) Voices() []*sound.Sound {
	var out []*sound.Sound
	if p.Tone != nil {
		out = append(out, p.Tone)
	}
	if p.Noise != nil {
		out = append(out, p.Noise)
	}
	return out
}

// Config returns the configuration the patch was built from.
func (p *Patch) Config() Config { return p.config }

// Attach adds every voice of p to ch and returns their identities.
func Attach[T any](p *Patch, ch *channel.Channel[T]) []int {
	voices := p.Voices()
	ids := make([]int, len(voices))
	for i, v := range voices {
		ids[i] = ch.AddSound(v)
	}
	return ids
}

// NewChannel builds a channel at the patch's sample rate and gain with all
// voices attached.
func NewChannel[T any](p *Patch, convert sampleformat.Converter[T], opts ...channel.Option) *channel.Channel[T] {
	ch := channel.New(p.config.Gain, p.config.SampleRate, convert, opts...)
	Attach(p, ch)
	return ch
}
