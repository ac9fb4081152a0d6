package block

// Block is a processing node pairing one Generator and one Modifier.
// The generator and modifier are fixed at construction.
type Block struct {
	g     Generator
	m     Modifier
	inter Interactor
	input float64
}

// New creates a Block from g and m combined through inter. Nil units are
// replaced with their neutral counterparts (Zero, Passthrough).
func New(g Generator, m Modifier, inter Interactor) *Block {
	if g == nil {
		g = Zero{}
	}
	if m == nil {
		m = Passthrough{}
	}
	return &Block{g: g, m: m, inter: inter}
}

// FromGenerator creates a Block that outputs g unchanged.
func FromGenerator(g Generator) *Block {
	return New(g, Passthrough{}, GeneratorInteractor())
}

// FromModifier creates a Block that outputs m applied to the primed input.
func FromModifier(m Modifier) *Block {
	return New(Zero{}, m, ModifierInteractor())
}

// Prime adds x to the pending input of the next Process call.
func (b *Block) Prime(x float64) {
	b.input += x
}

// Process advances the generator and modifier by one time step, combines
// their outputs and clears the pending input.
func (b *Block) Process() float64 {
	y := b.inter.Combine(b.g.Process(), b.m.ProcessSample(b.input))
	b.input = 0
	return y
}

// Pending returns the input accumulated since the last Process call.
func (b *Block) Pending() float64 { return b.input }

// Generator returns the block's generator.
func (b *Block) Generator() Generator { return b.g }

// Modifier returns the block's modifier.
func (b *Block) Modifier() Modifier { return b.m }

// Interactor returns the block's combination policy.
func (b *Block) Interactor() Interactor { return b.inter }
