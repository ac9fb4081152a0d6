package block

import "testing"

func TestInteractorCombine(t *testing.T) {
	tests := []struct {
		name  string
		inter Interactor
		g, m  float64
		want  float64
	}{
		{name: "zero value multiplies", inter: Interactor{}, g: 0.5, m: -4, want: -2},
		{name: "multiply", inter: MultiplyInteractor(), g: 3, m: 2, want: 6},
		{name: "generator", inter: GeneratorInteractor(), g: 3, m: 2, want: 3},
		{name: "modifier", inter: ModifierInteractor(), g: 3, m: 2, want: 2},
		{name: "custom", inter: CustomInteractor(func(g, m float64) float64 { return g - m }), g: 3, m: 2, want: 1},
		{name: "custom nil", inter: CustomInteractor(nil), g: 3, m: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inter.Combine(tt.g, tt.m); got != tt.want {
				t.Fatalf("Combine(%v, %v) = %v, want %v", tt.g, tt.m, got, tt.want)
			}
		})
	}
}

func TestInteractorKindString(t *testing.T) {
	tests := map[InteractorKind]string{
		Multiply:             "multiply",
		GeneratorPassthrough: "generator-passthrough",
		ModifierPassthrough:  "modifier-passthrough",
		Custom:               "custom",
		InteractorKind(42):   "InteractorKind(42)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
	if got := CustomInteractor(nil).String(); got != "custom" {
		t.Fatalf("Interactor.String() = %q, want custom", got)
	}
}
