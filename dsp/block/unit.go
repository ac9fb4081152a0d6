package block

// Generator produces one sample per call from internal state only.
type Generator interface {
	Process() float64
}

// Modifier consumes one input sample per call and produces one output
// sample. Every single-sample processor exposing ProcessSample, such as
// a biquad section, satisfies it.
type Modifier interface {
	ProcessSample(x float64) float64
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() float64

// Process calls f.
func (f GeneratorFunc) Process() float64 { return f() }

// ModifierFunc adapts a function to the Modifier interface.
type ModifierFunc func(x float64) float64

// ProcessSample calls f(x).
func (f ModifierFunc) ProcessSample(x float64) float64 { return f(x) }

// Zero is a Generator that always produces 0.
type Zero struct{}

// Process returns 0.
func (Zero) Process() float64 { return 0 }

// Passthrough is a Modifier that returns its input unchanged.
type Passthrough struct{}

// ProcessSample returns x.
func (Passthrough) ProcessSample(x float64) float64 { return x }
