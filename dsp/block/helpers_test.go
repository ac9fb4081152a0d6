package block

import "math"

// ramp counts up by step on every call.
type ramp struct {
	value, step float64
}

func (r *ramp) Process() float64 {
	v := r.value
	r.value += r.step
	return v
}

// sine is a phase-accumulating oscillator used as a stateful generator.
type sine struct {
	phase, inc float64
}

func newSine(freq, sampleRate float64) *sine {
	return &sine{inc: 2 * math.Pi * freq / sampleRate}
}

func (s *sine) Process() float64 {
	y := math.Sin(s.phase)
	s.phase += s.inc
	if s.phase >= 2*math.Pi {
		s.phase -= 2 * math.Pi
	}
	return y
}

// onePole is a stateful lowpass modifier.
type onePole struct {
	coef, state float64
}

func (p *onePole) ProcessSample(x float64) float64 {
	p.state += p.coef * (x - p.state)
	return p.state
}

// recorder remembers every input it was fed.
type recorder struct {
	inputs []float64
}

func (r *recorder) ProcessSample(x float64) float64 {
	r.inputs = append(r.inputs, x)
	return x
}
