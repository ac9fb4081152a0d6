package sound

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-sound/dsp/block"
	"github.com/cwbudde/algo-sound/dsp/core"
)

// ErrNilArena is returned when a Sound is created without a block arena.
var ErrNilArena = errors.New("sound: nil arena")

// Option mutates Sound construction parameters.
type Option func(*config) error

type config struct {
	inputGain  float64
	outputGain float64
}

// WithInputGain sets the linear gain applied to the input before the generator block.
func WithInputGain(gain float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(gain) {
			return fmt.Errorf("sound: input gain must be finite: %f", gain)
		}
		cfg.inputGain = gain
		return nil
	}
}

// WithOutputGain sets the linear gain applied to the end of the chain.
func WithOutputGain(gain float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(gain) {
			return fmt.Errorf("sound: output gain must be finite: %f", gain)
		}
		cfg.outputGain = gain
		return nil
	}
}

// WithInputGainDB sets the input gain in dB.
func WithInputGainDB(db float64) Option {
	return WithInputGain(core.DBToLinear(db))
}

// WithOutputGainDB sets the output gain in dB.
func WithOutputGainDB(db float64) Option {
	return WithOutputGain(core.DBToLinear(db))
}

// Sound runs one generator block through an ordered list of modifier
// blocks. Blocks live in an arena and are referenced by handle, so the same
// block may appear in several sounds; see block.Arena for the conflict rule.
//
// Mute and pause may be toggled from another goroutine. Everything else
// must be serialized with processing.
type Sound struct {
	arena      *block.Arena
	generator  block.Handle
	modifiers  []block.Handle
	inputGain  float64
	outputGain float64

	id         int
	registered bool

	muted  atomic.Bool
	paused atomic.Bool

	skipped uint64
}

// New creates a Sound whose chain starts with the generator block h.
// The modifier list starts empty.
func New(arena *block.Arena, generator block.Handle, opts ...Option) (*Sound, error) {
	if arena == nil {
		return nil, ErrNilArena
	}
	if !arena.Valid(generator) {
		return nil, fmt.Errorf("sound: generator %d: %w", generator, block.ErrInvalidHandle)
	}

	cfg := config{inputGain: 1, outputGain: 1}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Sound{
		arena:      arena,
		generator:  generator,
		inputGain:  cfg.inputGain,
		outputGain: cfg.outputGain,
	}, nil
}

// AddModifier appends a modifier block to the end of the chain.
func (s *Sound) AddModifier(h block.Handle) error {
	return s.ExtendModifiers(h)
}

// ExtendModifiers appends modifier blocks to the end of the chain in order.
// If any handle is invalid nothing is appended.
func (s *Sound) ExtendModifiers(hs ...block.Handle) error {
	for _, h := range hs {
		if !s.arena.Valid(h) {
			return fmt.Errorf("sound: modifier %d: %w", h, block.ErrInvalidHandle)
		}
	}
	s.modifiers = append(s.modifiers, hs...)
	return nil
}

// Process runs one standalone time step: it ticks the arena and then
// performs Step. Use Step when a scheduler ticks the arena itself.
func (s *Sound) Process(input float64) float64 {
	s.arena.Tick()
	return s.Step(input)
}

// Step advances the chain by one time step within the arena's current step.
//
// A generator block that was already processed in this step contributes 0;
// a modifier block that was already processed is skipped and the running
// value passes through unchanged. Both cases are counted by Skipped.
func (s *Sound) Step(input float64) float64 {
	if s.paused.Load() {
		return 0
	}

	s.arena.Prime(s.generator, input*s.inputGain)
	out, ok := s.arena.Process(s.generator)
	if !ok {
		s.skipped++
	}

	for _, h := range s.modifiers {
		s.arena.Prime(h, out)
		y, ok := s.arena.Process(h)
		if !ok {
			s.skipped++
			continue
		}
		out = y
	}

	if s.muted.Load() {
		return 0
	}

	return out * s.outputGain
}

// TogglePause flips the paused state.
func (s *Sound) TogglePause() {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return
		}
	}
}

// IsPaused reports whether the sound is paused.
func (s *Sound) IsPaused() bool { return s.paused.Load() }

// ToggleMute flips the muted state.
func (s *Sound) ToggleMute() {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return
		}
	}
}

// IsMuted reports whether the sound is muted.
func (s *Sound) IsMuted() bool { return s.muted.Load() }

// Register assigns the mixing identity. Called by a channel.
func (s *Sound) Register(id int) {
	s.id = id
	s.registered = true
}

// Unregister clears the mixing identity. Called by a channel.
func (s *Sound) Unregister() {
	s.id = 0
	s.registered = false
}

// ID returns the mixing identity and whether one is assigned.
func (s *Sound) ID() (int, bool) {
	return s.id, s.registered
}

// InputGain returns the linear input gain.
func (s *Sound) InputGain() float64 { return s.inputGain }

// OutputGain returns the linear output gain.
func (s *Sound) OutputGain() float64 { return s.outputGain }

// SetInputGain sets the linear input gain.
func (s *Sound) SetInputGain(gain float64) { s.inputGain = gain }

// SetOutputGain sets the linear output gain.
func (s *Sound) SetOutputGain(gain float64) { s.outputGain = gain }

// Generator returns the handle of the generator block.
func (s *Sound) Generator() block.Handle { return s.generator }

// Modifiers returns a copy of the modifier chain.
func (s *Sound) Modifiers() []block.Handle {
	out := make([]block.Handle, len(s.modifiers))
	copy(out, s.modifiers)
	return out
}

// Arena returns the arena holding the sound's blocks.
func (s *Sound) Arena() *block.Arena { return s.arena }

// Skipped returns how many block stages were skipped because their block
// had already been processed in the same step.
func (s *Sound) Skipped() uint64 { return s.skipped }
