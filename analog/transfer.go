package analog

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filterspec/internal/poly"
)

// TransferFunction is a rational function in the Laplace variable, held as
// numerator and denominator coefficient slices in descending power order.
//
// Transfer functions are derived values: they are rebuilt from the current
// cascade state on every recomposition and never mutated incrementally.
type TransferFunction struct {
	Num []float64
	Den []float64
}

// Identity returns the all-pass unity-gain transfer function H(s) = 1.
func Identity() TransferFunction {
	return TransferFunction{Num: []float64{1}, Den: []float64{1}}
}

// Response computes the complex frequency response H(jω) at the given
// angular frequency (rad/s).
func (tf TransferFunction) Response(w float64) complex128 {
	return poly.EvalJW(tf.Num, w) / poly.EvalJW(tf.Den, w)
}

// MagnitudeDB returns 20*log10(|H(jω)|), the Bode magnitude in dB.
func (tf TransferFunction) MagnitudeDB(w float64) float64 {
	return 20 * math.Log10(cmplx.Abs(tf.Response(w)))
}

// Phase returns the phase response in radians at the given angular
// frequency. The result is in [-pi, pi].
func (tf TransferFunction) Phase(w float64) float64 {
	return cmplx.Phase(tf.Response(w))
}

// NumeratorDegree returns the degree of the numerator polynomial.
func (tf TransferFunction) NumeratorDegree() int {
	return poly.Degree(tf.Num)
}

// DenominatorDegree returns the degree of the denominator polynomial.
func (tf TransferFunction) DenominatorDegree() int {
	return poly.Degree(tf.Den)
}
