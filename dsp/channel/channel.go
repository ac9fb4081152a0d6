package channel

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cwbudde/algo-sound/dsp/block"
	"github.com/cwbudde/algo-sound/dsp/buffer"
	"github.com/cwbudde/algo-sound/dsp/core"
	"github.com/cwbudde/algo-sound/dsp/sampleformat"
	"github.com/cwbudde/algo-sound/dsp/sound"
	"github.com/cwbudde/algo-vecmath"
)

// Option configures a Channel.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	processTime time.Duration
}

// WithLogger sets the logger for registration events and block conflicts.
// Channels are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProcessTime sets the initial processing window. Non-positive
// durations keep core.DefaultProcessTime.
func WithProcessTime(d time.Duration) Option {
	return func(o *options) {
		o.processTime = d
	}
}

type entry struct {
	id    int
	sound *sound.Sound
	pass  int // occurrence of sound among lower identities
}

type arenaRef struct {
	arena *block.Arena
	refs  int
}

// Channel mixes registered sounds into a buffer of output samples of type T.
//
// Registered sounds are kept sorted by identity; each pass visits them in
// ascending identity order. All methods are serialized, so sounds may be
// added or removed from a control goroutine between Process calls made by an
// audio callback.
type Channel[T any] struct {
	mu sync.Mutex

	cfg     core.ProcessorConfig
	gain    float64
	convert sampleformat.Converter[T]
	logger  *slog.Logger

	output *buffer.Buffer[T]
	mix    []float64

	sounds []entry
	arenas []arenaRef
	passes int
	nextID int
}

// New creates a channel with the given gain and sample rate. The output
// buffer is sized for core.DefaultProcessTime (10 ms) unless WithProcessTime
// says otherwise. The sample rate is not validated: a rate that is not
// positive and finite gives a zero-length buffer. convert must not be nil.
func New[T any](gain, sampleRate float64, convert sampleformat.Converter[T], opts ...Option) *Channel[T] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cfg := core.ApplyProcessorOptions(core.WithProcessTime(o.processTime))
	cfg.SampleRate = sampleRate

	c := &Channel[T]{
		cfg:     cfg,
		gain:    gain,
		convert: convert,
		logger:  o.logger,
		output:  buffer.New[T](0),
	}
	c.setProcessTime(cfg.ProcessTime)
	return c
}

// NewFloat64 creates a channel producing float64 samples.
func NewFloat64(gain, sampleRate float64, opts ...Option) *Channel[float64] {
	return New(gain, sampleRate, sampleformat.Float64, opts...)
}

// SetProcessTime resizes the output buffer to d worth of samples, truncated
// to an integer count. Previously buffered output is discarded.
func (c *Channel[T]) SetProcessTime(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setProcessTime(d)
}

func (c *Channel[T]) setProcessTime(d time.Duration) {
	c.cfg.ProcessTime = d
	n := c.cfg.BlockSize()
	c.output.Reset(n)
	c.mix = core.EnsureLen(c.mix, n)
}

// ProcessTime returns the configured processing window.
func (c *Channel[T]) ProcessTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg.ProcessTime
}

// Process fills the output buffer. Every slot steps each registration once
// with a zero input, paused and muted sounds included. A sound registered n
// times is stepped in n consecutive passes with the arenas ticked before
// each pass, so a block shared by two different sounds is still processed
// once per pass. The per-slot sum is scaled by the channel gain and
// converted to T.
func (c *Channel[T]) Process() {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.output.Samples()
	mix := c.mix[:len(out)]

	conflicts := c.conflicts()

	for i := range mix {
		sum := 0.0
		for p := range c.passes {
			for _, ref := range c.arenas {
				ref.arena.Tick()
			}
			for _, e := range c.sounds {
				if e.pass == p {
					sum += e.sound.Step(0)
				}
			}
		}
		mix[i] = sum
	}

	vecmath.ScaleBlockInPlace(mix, c.gain)

	for i, x := range mix {
		out[i] = c.convert(x)
	}

	if n := c.conflicts() - conflicts; n > 0 {
		c.logger.Warn("channel: blocks processed twice in one step were skipped",
			"conflicts", n, "samples", c.output.Len())
	}
}

// AddSound registers s under a fresh identity and returns it. Adding the
// same sound twice gives it two identities; it is then advanced and mixed
// twice per sample.
func (c *Channel[T]) AddSound(s *sound.Sound) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	s.Register(id)
	c.sounds = append(c.sounds, entry{id: id, sound: s})
	c.retainArena(s.Arena())
	c.reindex()

	c.logger.Debug("channel: sound added", "id", id, "sounds", len(c.sounds))
	return id
}

// RemoveSound stops mixing the sound registered under id. Unknown
// identities are ignored.
//
// If the removed identity is the sound's current one, the sound takes over
// one of its remaining identities in this channel, or is unregistered when
// it has none left.
func (c *Channel[T]) RemoveSound(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.find(id)
	if !ok {
		return
	}

	s := c.sounds[i].sound
	c.sounds = slices.Delete(c.sounds, i, i+1)
	c.releaseArena(s.Arena())
	c.reindex()

	if cur, ok := s.ID(); ok && cur == id {
		s.Unregister()
		for _, e := range c.sounds {
			if e.sound == s {
				s.Register(e.id)
				break
			}
		}
	}

	c.logger.Debug("channel: sound removed", "id", id, "sounds", len(c.sounds))
}

// Output returns the most recently computed buffer. The slice is reused by
// the next Process call and must not be modified.
func (c *Channel[T]) Output() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.output.Samples()
}

// SetGain replaces the channel gain for subsequent Process calls.
func (c *Channel[T]) SetGain(gain float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gain = gain
}

// Gain returns the channel gain.
func (c *Channel[T]) Gain() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gain
}

// SampleRate returns the sample rate in Hz.
func (c *Channel[T]) SampleRate() float64 { return c.cfg.SampleRate }

// Len returns the number of mixing slots.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.sounds)
}

// IDs returns the registered identities in ascending order.
func (c *Channel[T]) IDs() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int, len(c.sounds))
	for i, e := range c.sounds {
		ids[i] = e.id
	}
	return ids
}

// Sound returns the sound registered under id.
func (c *Channel[T]) Sound(id int) (*sound.Sound, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.find(id)
	if !ok {
		return nil, false
	}
	return c.sounds[i].sound, true
}

// find relies on identities being appended in increasing order.
func (c *Channel[T]) find(id int) (int, bool) {
	return slices.BinarySearchFunc(c.sounds, id, func(e entry, id int) int {
		return e.id - id
	})
}

func (c *Channel[T]) reindex() {
	seen := make(map[*sound.Sound]int, len(c.sounds))
	c.passes = 0
	for i := range c.sounds {
		s := c.sounds[i].sound
		c.sounds[i].pass = seen[s]
		seen[s]++
		c.passes = max(c.passes, seen[s])
	}
}

func (c *Channel[T]) retainArena(a *block.Arena) {
	for i := range c.arenas {
		if c.arenas[i].arena == a {
			c.arenas[i].refs++
			return
		}
	}
	c.arenas = append(c.arenas, arenaRef{arena: a, refs: 1})
}

func (c *Channel[T]) releaseArena(a *block.Arena) {
	for i := range c.arenas {
		if c.arenas[i].arena != a {
			continue
		}
		c.arenas[i].refs--
		if c.arenas[i].refs == 0 {
			c.arenas = slices.Delete(c.arenas, i, i+1)
		}
		return
	}
}

func (c *Channel[T]) conflicts() uint64 {
	var n uint64
	for _, ref := range c.arenas {
		n += ref.arena.Conflicts()
	}
	return n
}
