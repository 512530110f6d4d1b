package analyze

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filterspec/analog"
	"github.com/cwbudde/algo-filterspec/internal/poly"
	"github.com/cwbudde/algo-filterspec/stencil"
	"github.com/cwbudde/algo-filterspec/sweep"
)

// EmptyCascadeFloorDB is the magnitude reported for every sweep point when
// no enabled, valid section survives composition.
const EmptyCascadeFloorDB = -100

// Point is one sample of the magnitude curve.
type Point struct {
	Frequency   float64 // rad/s
	MagnitudeDB float64
}

// Result is the complete outcome of one recomputation pass. It is a derived
// value: recomputed from scratch on every call and never mutated.
type Result struct {
	Curve          []Point
	PhaseRad       []float64 // per curve point; nil without WithPhase or with an empty cascade
	SpecsMet       bool
	Violations     stencil.Violations
	Envelope       stencil.Envelope
	Cascade        analog.Cascade
	ActiveSections int
}

// Frequencies returns the curve's frequency axis as its own slice.
func (r *Result) Frequencies() []float64 {
	out := make([]float64, len(r.Curve))
	for i, p := range r.Curve {
		out[i] = p.Frequency
	}

	return out
}

// Magnitudes returns the curve's magnitude values (dB) as its own slice.
func (r *Result) Magnitudes() []float64 {
	out := make([]float64, len(r.Curve))
	for i, p := range r.Curve {
		out[i] = p.MagnitudeDB
	}

	return out
}

type config struct {
	points int
	phase  bool
}

// Option configures a Recompute call.
type Option func(*config)

// WithPoints sets the number of sweep samples. Default is
// sweep.DefaultPoints (1200). Values below 2 are ignored.
func WithPoints(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.points = n
		}
	}
}

// WithPhase additionally computes the phase response per curve point.
func WithPhase() Option {
	return func(cfg *config) { cfg.phase = true }
}

// Recompute runs the full pipeline: compose the sections, sweep the
// composed response, and check it against the specification.
//
// Invalid or disabled sections are skipped silently (the permissive
// mid-edit contract), but a specification with no usable sweep range is
// returned as a typed error so the caller can decide whether to keep its
// previous frame.
func Recompute(sections []analog.Section, spec stencil.Specification, opts ...Option) (*Result, error) {
	cfg := config{points: sweep.DefaultPoints}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	err := spec.Validate()
	if err != nil {
		return nil, fmt.Errorf("analyze: invalid specification: %w", err)
	}

	grid := sweep.FromEdges(spec.PassbandEdge, spec.StopbandEdge)
	grid.Points = cfg.points

	freqs, err := grid.Frequencies()
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	cas := analog.Compose(sections)

	mags := make([]float64, len(freqs))
	if cas.Sections == 0 {
		for i := range mags {
			mags[i] = EmptyCascadeFloorDB
		}
	} else {
		magnitudesDB(mags, cas.TF, freqs)
	}

	ok, violations := spec.Check(freqs, mags)

	curve := make([]Point, len(freqs))
	for i := range curve {
		curve[i] = Point{Frequency: freqs[i], MagnitudeDB: mags[i]}
	}

	res := &Result{
		Curve:          curve,
		SpecsMet:       ok,
		Violations:     violations,
		Envelope:       spec.EnvelopeOver(grid.WMin, grid.WMax),
		Cascade:        cas,
		ActiveSections: cas.Sections,
	}

	if cfg.phase && cas.Sections > 0 {
		res.PhaseRad = make([]float64, len(freqs))
		for i, w := range freqs {
			res.PhaseRad[i] = cas.TF.Phase(w)
		}
	}

	return res, nil
}

// magnitudesDB fills dst with 20*log10(|H(jω)|) for every sweep frequency.
//
// The numerator and denominator polynomials are evaluated separately so
// their magnitudes can be computed with the SIMD vector kernels, then
// combined as a dB difference.
func magnitudesDB(dst []float64, tf analog.TransferFunction, freqs []float64) {
	n := len(freqs)
	buf := make([]float64, 6*n)

	reN, imN := buf[:n], buf[n:2*n]
	reD, imD := buf[2*n:3*n], buf[3*n:4*n]
	magN, magD := buf[4*n:5*n], buf[5*n:6*n]

	for i, w := range freqs {
		hn := poly.EvalJW(tf.Num, w)
		hd := poly.EvalJW(tf.Den, w)
		reN[i], imN[i] = real(hn), imag(hn)
		reD[i], imD[i] = real(hd), imag(hd)
	}

	vecmath.Magnitude(magN, reN, imN)
	vecmath.Magnitude(magD, reD, imD)

	for i := range dst {
		dst[i] = 20 * (math.Log10(magN[i]) - math.Log10(magD[i]))
	}
}
