package fir_test

import (
	"fmt"

	"github.com/cwbudde/algo-sig/dsp/filter/fir"
)

func ExampleFilter_ProcessBlockTo() {
	// First-order high-pass, the pre-emphasis workhorse.
	f := fir.New([]float64{1, -0.95})

	src := []float64{1, 2, 3, 4}
	dst := make([]float64, len(src))
	f.ProcessBlockTo(dst, src)

	for _, y := range dst {
		fmt.Printf("%.2f ", y)
	}
	fmt.Println()
	// Output:
	// 1.00 1.05 1.10 1.15
}
