package sweep

import (
	"errors"
	"math"
)

// Errors returned by grid functions.
var (
	ErrInvalidRange  = errors.New("sweep: upper frequency must exceed lower frequency")
	ErrInvalidPoints = errors.New("sweep: point count must be at least 2")
)

// DefaultPoints is the number of samples in a full-resolution sweep.
const DefaultPoints = 1200

// edgeMargin is the per-side frequency margin, one decade beyond each edge.
const edgeMargin = 10

// Grid describes a logarithmic frequency sweep in rad/s.
type Grid struct {
	WMin   float64 // lower bound in rad/s
	WMax   float64 // upper bound in rad/s
	Points int     // number of samples, both endpoints inclusive
}

// FromEdges builds the sweep grid for a pair of band-edge frequencies:
// a decade of margin on both sides, with the lower bound floored at 1 rad/s
// when it would otherwise be non-positive. The edges may be given in either
// order.
//
// FromEdges never fails; a degenerate pair (both edges non-positive)
// produces a grid whose Validate reports the problem.
func FromEdges(wp, wa float64) Grid {
	wMin := math.Min(wp, wa) / edgeMargin
	wMax := math.Max(wp, wa) * edgeMargin

	if wMin <= 0 {
		wMin = 1
	}

	return Grid{WMin: wMin, WMax: wMax, Points: DefaultPoints}
}

// Validate checks that the grid parameters describe a usable sweep.
func (g Grid) Validate() error {
	if g.Points < 2 {
		return ErrInvalidPoints
	}

	if g.WMin <= 0 || g.WMax <= g.WMin ||
		math.IsNaN(g.WMin) || math.IsNaN(g.WMax) || math.IsInf(g.WMax, 0) {
		return ErrInvalidRange
	}

	return nil
}

// Frequencies returns Points samples spaced uniformly in log10 between WMin
// and WMax. The sequence is strictly increasing and includes both endpoints
// exactly.
func (g Grid) Frequencies() ([]float64, error) {
	err := g.Validate()
	if err != nil {
		return nil, err
	}

	out := make([]float64, g.Points)

	l0 := math.Log10(g.WMin)
	step := (math.Log10(g.WMax) - l0) / float64(g.Points-1)

	for i := range out {
		out[i] = math.Pow(10, l0+float64(i)*step)
	}

	// Pin the endpoints so they are exact despite rounding in Pow.
	out[0] = g.WMin
	out[g.Points-1] = g.WMax

	return out, nil
}
