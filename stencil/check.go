package stencil

// Tolerance is the boundary slack applied to every compliance comparison,
// in dB. A response lying exactly on a stencil line, or within this much of
// it, still passes.
const Tolerance = 0.01

// Violations records which stencil constraints a response broke.
type Violations struct {
	GainCeiling     bool // magnitude above Gmax somewhere in the sweep
	PassbandFloor   bool // magnitude below Gmax-Amax at some ω <= ωp
	StopbandCeiling bool // magnitude above Gmax-Amin at some ω >= ωa
}

// Any reports whether at least one constraint was violated.
func (v Violations) Any() bool {
	return v.GainCeiling || v.PassbandFloor || v.StopbandCeiling
}

// Check tests a magnitude curve against the stencil. freqs and mags are
// parallel slices of sweep frequencies (rad/s) and magnitudes (dB); extra
// elements of the longer slice are ignored.
//
// All three constraints are always evaluated so the returned Violations
// reflect every broken boundary; the verdict is their conjunction.
func (s Specification) Check(freqs, mags []float64) (bool, Violations) {
	var v Violations

	n := len(freqs)
	if len(mags) < n {
		n = len(mags)
	}

	ceiling := s.ReferenceGain + Tolerance
	floor := s.ReferenceGain - s.PassbandRipple - Tolerance
	stopCeiling := s.ReferenceGain - s.StopbandAttenuation + Tolerance

	for i := 0; i < n; i++ {
		w, m := freqs[i], mags[i]

		if m > ceiling {
			v.GainCeiling = true
		}

		if w <= s.PassbandEdge && m < floor {
			v.PassbandFloor = true
		}

		if w >= s.StopbandEdge && m > stopCeiling {
			v.StopbandCeiling = true
		}
	}

	return !v.Any(), v
}
