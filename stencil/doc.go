// Package stencil defines the passband/stopband tolerance scheme an analog
// filter response is checked against, and performs the compliance check.
//
// A [Specification] carries the band edges ωp and ωa (rad/s, in either
// order), the passband ripple Amax, the stopband attenuation Amin and the
// reference gain Gmax (all dB). It defines two rectangular regions on the
// magnitude-vs-frequency plane:
//
//   - passband: frequencies up to ωp must stay within [Gmax-Amax, Gmax]
//   - stopband: frequencies from ωa up must stay below Gmax-Amin
//
// The reference gain additionally caps the response over the whole sweep.
// [Specification.Check] applies all three constraints with a boundary
// tolerance of [Tolerance] dB, and [Specification.EnvelopeOver] produces the
// boundary segments a renderer overlays on the Bode plot.
package stencil
