package analog_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterspec/analog"
)

func ExampleCompose() {
	sections := []analog.Section{
		{Name: "Stage #1", NaturalFreq: 1000, Q: 0.707, Enabled: true},
		{Name: "Stage #2", NaturalFreq: 1000, Q: 0.54, Enabled: true},
		{Name: "mid-edit", NaturalFreq: 0, Q: 1, Enabled: true}, // skipped
	}

	c := analog.Compose(sections)

	fmt.Printf("sections: %d, order: %d\n", c.Sections, c.Order())
	fmt.Printf("|H(0)| = %.2f dB\n", c.TF.MagnitudeDB(0))

	// Output:
	// sections: 2, order: 4
	// |H(0)| = 0.00 dB
}
