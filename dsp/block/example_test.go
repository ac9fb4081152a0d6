package block_test

import (
	"fmt"

	"github.com/cwbudde/algo-sound/dsp/block"
)

func ExampleNew() {
	carrier := block.GeneratorFunc(func() float64 { return 0.5 })
	envelope := block.ModifierFunc(func(x float64) float64 { return x * 2 })

	b := block.New(carrier, envelope, block.MultiplyInteractor())
	b.Prime(0.25)
	b.Prime(0.25)

	fmt.Println(b.Process(), b.Process())

	// Output:
	// 0.5 0
}

func ExampleArena() {
	a := block.NewArena()
	h := a.Add(block.FromGenerator(block.GeneratorFunc(func() float64 { return 1 })))

	y1, ok1 := a.Process(h)
	y2, ok2 := a.Process(h)
	fmt.Println(y1, ok1, y2, ok2, a.Conflicts())

	// Output:
	// 1 true 0 false 1
}
