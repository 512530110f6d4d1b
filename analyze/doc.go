// Package analyze ties cascade composition, sweep generation and stencil
// checking into a single recomputation pipeline.
//
// [Recompute] is the one entry point a presentation layer calls after every
// edit: it composes the current sections, sweeps the composed response and
// checks it against the specification, returning the curve, the verdict and
// the stencil envelope in one [Result]. The pipeline is a pure function of
// its inputs, so the caller is free to debounce, to recompute eagerly, or to
// keep the last good Result when an error is returned for a mid-edit
// specification.
//
//	res, err := analyze.Recompute(sections, spec)
//	if err != nil {
//	    // keep the previous frame; the spec is mid-edit
//	}
//	render(res.Curve, res.Envelope, res.SpecsMet)
//
// A cascade with no enabled, valid sections produces a flat curve at
// [EmptyCascadeFloorDB] rather than the identity's 0 dB: an empty cascade
// carries no signal worth validating against a specification that expects
// real filtering.
package analyze
