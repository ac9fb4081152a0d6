package block

import "fmt"

// InteractorKind enumerates the combination policies of a Block.
type InteractorKind int

const (
	// Multiply outputs generator × modifier.
	Multiply InteractorKind = iota
	// GeneratorPassthrough outputs the generator sample.
	GeneratorPassthrough
	// ModifierPassthrough outputs the modifier sample.
	ModifierPassthrough
	// Custom outputs a user supplied pure function of both samples.
	Custom
)

// String returns the policy name.
func (k InteractorKind) String() string {
	switch k {
	case Multiply:
		return "multiply"
	case GeneratorPassthrough:
		return "generator-passthrough"
	case ModifierPassthrough:
		return "modifier-passthrough"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("InteractorKind(%d)", int(k))
	}
}

// Interactor combines the generator and modifier outputs of one time step.
// The zero value is the Multiply policy.
//
// Custom functions must be pure: the same two inputs always give the same
// output. Hidden state in a custom function makes processing depend on call
// history outside the block.
type Interactor struct {
	kind InteractorKind
	fn   func(g, m float64) float64
}

// MultiplyInteractor returns the default amplitude-modulation policy.
func MultiplyInteractor() Interactor { return Interactor{kind: Multiply} }

// GeneratorInteractor returns the policy that selects the generator output.
func GeneratorInteractor() Interactor { return Interactor{kind: GeneratorPassthrough} }

// ModifierInteractor returns the policy that selects the modifier output.
func ModifierInteractor() Interactor { return Interactor{kind: ModifierPassthrough} }

// CustomInteractor wraps fn as a Custom policy. A nil fn combines to 0.
func CustomInteractor(fn func(g, m float64) float64) Interactor {
	return Interactor{kind: Custom, fn: fn}
}

// Kind returns the policy kind.
func (i Interactor) Kind() InteractorKind { return i.kind }

// Combine evaluates the policy for one generator and one modifier sample.
func (i Interactor) Combine(g, m float64) float64 {
	switch i.kind {
	case GeneratorPassthrough:
		return g
	case ModifierPassthrough:
		return m
	case Custom:
		if i.fn == nil {
			return 0
		}
		return i.fn(g, m)
	default:
		return g * m
	}
}

// String returns the policy name.
func (i Interactor) String() string { return i.kind.String() }
