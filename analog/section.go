package analog

import "math"

// Section describes one second-order analog filter stage in a cascade.
//
// Name is display metadata only and does not affect composition. Order of
// sections within a cascade is preserved for display but has no effect on
// the composed magnitude response.
type Section struct {
	Name        string  // display label
	NaturalFreq float64 // ω0 in rad/s
	Q           float64 // quality factor
	Enabled     bool
}

// Valid reports whether the section parameters describe a usable stage.
// Non-positive or non-finite ω0 or Q marks a stage that is mid-edit or
// malformed; such stages are skipped during composition rather than
// treated as errors.
func (s Section) Valid() bool {
	if s.NaturalFreq <= 0 || math.IsNaN(s.NaturalFreq) || math.IsInf(s.NaturalFreq, 0) {
		return false
	}

	if s.Q <= 0 || math.IsNaN(s.Q) || math.IsInf(s.Q, 0) {
		return false
	}

	return true
}

// TF returns the section's transfer function
//
//	H(s) = ω0² / (s² + (ω0/Q)·s + ω0²)
//
// the standard unity-DC-gain low-pass biquad in Laplace form. The caller
// is expected to have checked Valid first; an invalid section yields a
// degenerate polynomial pair.
func (s Section) TF() TransferFunction {
	w0 := s.NaturalFreq
	w0sq := w0 * w0

	return TransferFunction{
		Num: []float64{w0sq},
		Den: []float64{1, w0 / s.Q, w0sq},
	}
}
