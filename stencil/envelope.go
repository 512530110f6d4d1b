package stencil

import "math"

// maskHeadroom is how far above the reference gain the stopband mask is
// drawn, in dB. The forbidden stopband region is unbounded above; the mask
// top only frames it for rendering.
const maskHeadroom = 10

// Segment is one horizontal boundary line of the tolerance stencil.
type Segment struct {
	W0, W1 float64 // frequency span in rad/s
	DB     float64 // magnitude level in dB
}

// Envelope holds the four stencil boundary segments for overlay rendering.
type Envelope struct {
	PassbandCeiling Segment // Gmax over [wMin, ωp]
	PassbandFloor   Segment // Gmax-Amax over [wMin, ωp]
	StopbandCeiling Segment // Gmax-Amin over [ωa, wMax]
	StopbandMaskTop Segment // Gmax+10 over [ωa, wMax], top of the drawn mask
}

// EnvelopeOver returns the stencil segments spanning the given sweep
// bounds. wMin and wMax typically come from the sweep grid derived from
// this specification.
func (s Specification) EnvelopeOver(wMin, wMax float64) Envelope {
	g := s.ReferenceGain

	return Envelope{
		PassbandCeiling: Segment{W0: wMin, W1: s.PassbandEdge, DB: g},
		PassbandFloor:   Segment{W0: wMin, W1: s.PassbandEdge, DB: g - s.PassbandRipple},
		StopbandCeiling: Segment{W0: s.StopbandEdge, W1: wMax, DB: g - s.StopbandAttenuation},
		StopbandMaskTop: Segment{W0: s.StopbandEdge, W1: wMax, DB: g + maskHeadroom},
	}
}

// YRange returns the magnitude axis range the stencil was designed around:
// 30 dB below the stopband ceiling (floored at -100 dB) up to 10 dB above
// the reference gain (at least +10 dB).
func (s Specification) YRange() (lo, hi float64) {
	lo = math.Max(s.ReferenceGain-s.StopbandAttenuation-30, -100)
	hi = math.Max(s.ReferenceGain+maskHeadroom, 10)

	return lo, hi
}
