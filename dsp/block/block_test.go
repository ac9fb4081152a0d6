package block

import (
	"math"
	"testing"
)

func TestFromGeneratorMatchesGenerator(t *testing.T) {
	const sampleRate = 48000.0

	b := FromGenerator(newSine(440, sampleRate))
	ref := newSine(440, sampleRate)

	n := int(sampleRate) / 440
	for i := range n {
		got := b.Process()
		want := ref.Process()
		if math.Abs(got-want) > 1e-15 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestFromGeneratorIgnoresInput(t *testing.T) {
	b := FromGenerator(&ramp{value: 1, step: 1})
	b.Prime(100)
	if got := b.Process(); got != 1 {
		t.Fatalf("Process() = %v, want 1", got)
	}
}

func TestFromModifierFiltersPrimedInput(t *testing.T) {
	b := FromModifier(&onePole{coef: 0.5})
	ref := &onePole{coef: 0.5}

	inputs := []float64{1, 1, 0, -1, 0.5}
	for i, x := range inputs {
		b.Prime(x)
		got := b.Process()
		want := ref.ProcessSample(x)
		if got != want {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestPrimeAccumulates(t *testing.T) {
	rec := &recorder{}
	b := FromModifier(rec)

	b.Prime(0.25)
	b.Prime(0.5)
	if b.Pending() != 0.75 {
		t.Fatalf("Pending() = %v, want 0.75", b.Pending())
	}
	if got := b.Process(); got != 0.75 {
		t.Fatalf("Process() = %v, want 0.75", got)
	}
	if b.Pending() != 0 {
		t.Fatalf("Pending() after Process = %v, want 0", b.Pending())
	}
}

func TestProcessWithoutPrimeEqualsPrimeZero(t *testing.T) {
	a := FromModifier(&onePole{coef: 0.3})
	b := FromModifier(&onePole{coef: 0.3})

	a.Prime(1)
	b.Prime(1)
	a.Process()
	b.Process()

	for i := range 8 {
		b.Prime(0)
		got, want := a.Process(), b.Process()
		if got != want {
			t.Fatalf("step %d: unprimed %v, primed-zero %v", i, got, want)
		}
	}
}

func TestInputDoesNotCarryAcrossCycles(t *testing.T) {
	rec := &recorder{}
	b := FromModifier(rec)

	b.Prime(2)
	b.Process()
	b.Process()

	if len(rec.inputs) != 2 || rec.inputs[0] != 2 || rec.inputs[1] != 0 {
		t.Fatalf("inputs = %v, want [2 0]", rec.inputs)
	}
}

func TestNewMultiplies(t *testing.T) {
	b := New(&ramp{value: 2, step: 1}, ModifierFunc(func(x float64) float64 { return x + 1 }), MultiplyInteractor())

	b.Prime(0.5)
	if got := b.Process(); got != 3 {
		t.Fatalf("Process() = %v, want 3", got)
	}
	if got := b.Process(); got != 3 {
		t.Fatalf("Process() = %v, want 3 (3 * 1)", got)
	}
}

func TestNewNilUnitsAreNeutral(t *testing.T) {
	b := New(nil, nil, CustomInteractor(func(g, m float64) float64 { return g + m }))
	if _, ok := b.Generator().(Zero); !ok {
		t.Fatalf("Generator() = %T, want Zero", b.Generator())
	}
	if _, ok := b.Modifier().(Passthrough); !ok {
		t.Fatalf("Modifier() = %T, want Passthrough", b.Modifier())
	}

	b.Prime(0.4)
	if got := b.Process(); got != 0.4 {
		t.Fatalf("Process() = %v, want 0.4", got)
	}
}

func TestAccessors(t *testing.T) {
	g := GeneratorFunc(func() float64 { return 1 })
	b := FromGenerator(g)
	if b.Interactor().Kind() != GeneratorPassthrough {
		t.Fatalf("Interactor() = %v, want generator-passthrough", b.Interactor())
	}
	if b.Generator().Process() != 1 {
		t.Fatal("Generator() should return the wrapped generator")
	}

	m := FromModifier(Passthrough{})
	if m.Interactor().Kind() != ModifierPassthrough {
		t.Fatalf("Interactor() = %v, want modifier-passthrough", m.Interactor())
	}
	if _, ok := m.Generator().(Zero); !ok {
		t.Fatalf("Generator() = %T, want Zero", m.Generator())
	}
}
