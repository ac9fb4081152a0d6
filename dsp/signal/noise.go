package signal

import "math/rand"

// Noise generates deterministic white noise in [-amplitude, amplitude].
type Noise struct {
	amplitude float64
	seed      int64
	rng       *rand.Rand
}

// NewNoise creates a seeded white noise generator.
func NewNoise(opts ...Option) (*Noise, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Noise{
		amplitude: cfg.amplitude,
		seed:      cfg.seed,
		rng:       rand.New(rand.NewSource(cfg.seed)),
	}, nil
}

// Process returns the next noise sample.
func (n *Noise) Process() float64 {
	return (n.rng.Float64()*2 - 1) * n.amplitude
}

// Reset restarts the sequence from the configured seed.
func (n *Noise) Reset() {
	n.rng.Seed(n.seed)
}

// Seed returns the configured seed.
func (n *Noise) Seed() int64 { return n.seed }

// Constant is a generator that always returns its value.
type Constant float64

// Process returns c.
func (c Constant) Process() float64 { return float64(c) }
