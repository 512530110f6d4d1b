package stencil

import (
	"errors"
	"math"
)

// Errors returned by specification validation.
var (
	ErrInvalidEdges       = errors.New("stencil: at least one band edge must be positive")
	ErrInvalidRipple      = errors.New("stencil: passband ripple must be positive")
	ErrInvalidAttenuation = errors.New("stencil: stopband attenuation must be positive")
	ErrInvalidGain        = errors.New("stencil: reference gain must be finite")
)

// Specification is the tolerance scheme a filter response must satisfy.
//
// The band edges may be in either relative order: a lowpass specification
// has ωp < ωa, a highpass one the reverse. Consumers derive the sweep range
// via min/max, never from field position.
type Specification struct {
	PassbandEdge        float64 // ωp in rad/s
	StopbandEdge        float64 // ωa in rad/s
	PassbandRipple      float64 // Amax in dB
	StopbandAttenuation float64 // Amin in dB
	ReferenceGain       float64 // Gmax in dB
}

// Validate checks that the specification describes a usable stencil.
// With both band edges non-positive there is no frequency range to sweep,
// so that case is rejected rather than guessed at.
func (s Specification) Validate() error {
	if math.Max(s.PassbandEdge, s.StopbandEdge) <= 0 ||
		math.IsNaN(s.PassbandEdge) || math.IsNaN(s.StopbandEdge) ||
		math.IsInf(s.PassbandEdge, 0) || math.IsInf(s.StopbandEdge, 0) {
		return ErrInvalidEdges
	}

	if s.PassbandRipple <= 0 || math.IsNaN(s.PassbandRipple) || math.IsInf(s.PassbandRipple, 0) {
		return ErrInvalidRipple
	}

	if s.StopbandAttenuation <= 0 || math.IsNaN(s.StopbandAttenuation) || math.IsInf(s.StopbandAttenuation, 0) {
		return ErrInvalidAttenuation
	}

	if math.IsNaN(s.ReferenceGain) || math.IsInf(s.ReferenceGain, 0) {
		return ErrInvalidGain
	}

	return nil
}
