package sweep_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterspec/sweep"
)

func ExampleFromEdges() {
	g := sweep.FromEdges(1000, 5000)

	freqs, err := g.Frequencies()
	if err != nil {
		panic(err)
	}

	fmt.Printf("range: %.0f to %.0f rad/s\n", g.WMin, g.WMax)
	fmt.Printf("samples: %d\n", len(freqs))
	fmt.Printf("endpoints: %.0f, %.0f\n", freqs[0], freqs[len(freqs)-1])

	// Output:
	// range: 100 to 50000 rad/s
	// samples: 1200
	// endpoints: 100, 50000
}
