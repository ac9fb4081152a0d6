package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-sound/dsp/signal"
)

func ExampleNewSine() {
	osc, err := signal.NewSine(250, 1000)
	if err != nil {
		panic(err)
	}

	x := make([]float64, 4)
	for i := range x {
		x[i] = osc.Process()
	}
	fmt.Printf("%.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3])

	// Output:
	// 0 1 0 -1
}

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}
