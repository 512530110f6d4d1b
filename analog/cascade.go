package analog

import "github.com/cwbudde/algo-filterspec/internal/poly"

// Cascade is the composed transfer function of a series of sections,
// together with the number of sections that contributed to it.
//
// Sections reports how many enabled, valid sections survived filtering so
// that evaluators can special-case the empty cascade: an identity transfer
// function alone cannot distinguish "no filtering requested" from a genuine
// unity-gain filter.
type Cascade struct {
	TF       TransferFunction
	Sections int
}

// Compose filters out disabled and invalid sections and multiplies the
// survivors' transfer functions into a single rational function. Cascading
// in series means transfer functions multiply, so all numerators are
// multiplied together and all denominators likewise.
//
// Compose is a pure function of its input: it never fails, and malformed
// sections are excluded rather than surfaced as errors. With no surviving
// sections the result is the identity transfer function with Sections = 0.
func Compose(sections []Section) Cascade {
	num := []float64{1}
	den := []float64{1}
	count := 0

	for _, s := range sections {
		if !s.Enabled || !s.Valid() {
			continue
		}

		tf := s.TF()
		num = poly.Mul(num, tf.Num)
		den = poly.Mul(den, tf.Den)
		count++
	}

	return Cascade{
		TF:       TransferFunction{Num: num, Den: den},
		Sections: count,
	}
}

// Order returns the total filter order (2 per section).
func (c Cascade) Order() int {
	return 2 * c.Sections
}
