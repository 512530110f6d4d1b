// Package poly provides small real-coefficient polynomial helpers shared by
// the analog transfer-function packages.
//
// Polynomials are represented as coefficient slices in descending power
// order: p[0]*s^(n-1) + p[1]*s^(n-2) + ... + p[n-1].
package poly

// Mul returns the product of two polynomials. The result has degree
// deg(a) + deg(b). Empty inputs are treated as the zero polynomial.
func Mul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}

		for j, cb := range b {
			out[i+j] += ca * cb
		}
	}

	return out
}

// EvalJW evaluates the polynomial at s = jω using Horner's method.
func EvalJW(p []float64, w float64) complex128 {
	jw := complex(0, w)

	var acc complex128
	for _, c := range p {
		acc = acc*jw + complex(c, 0)
	}

	return acc
}

// Degree returns the degree of the polynomial, ignoring leading zero
// coefficients. The zero polynomial reports degree 0.
func Degree(p []float64) int {
	for i, c := range p {
		if c != 0 {
			return len(p) - 1 - i
		}
	}

	return 0
}
