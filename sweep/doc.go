// Package sweep generates the logarithmic frequency grid used to sample an
// analog frequency response for plotting and specification checking.
//
// A [Grid] spans one decade below the lower band edge to one decade above
// the upper band edge, matching the framing a Bode plot of the filter
// stencil needs:
//
//	g := sweep.FromEdges(1000, 5000)
//	freqs, err := g.Frequencies()
//
// The returned frequencies are strictly increasing, include both endpoints
// exactly, and are spaced uniformly in log10.
package sweep
