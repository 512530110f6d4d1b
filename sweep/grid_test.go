package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-filterspec/internal/testutil"
)

func TestFromEdges_Margins(t *testing.T) {
	g := FromEdges(1000, 5000)

	if g.WMin != 100 {
		t.Errorf("WMin = %v, want 100", g.WMin)
	}

	if g.WMax != 50000 {
		t.Errorf("WMax = %v, want 50000", g.WMax)
	}

	if g.Points != DefaultPoints {
		t.Errorf("Points = %d, want %d", g.Points, DefaultPoints)
	}
}

func TestFromEdges_SwappedEdges(t *testing.T) {
	// A highpass-style specification has ωp > ωa; min/max must still hold.
	a := FromEdges(1000, 5000)
	b := FromEdges(5000, 1000)

	if a != b {
		t.Errorf("swapped edges: got %+v, want %+v", b, a)
	}
}

func TestFromEdges_ClampsLowerBound(t *testing.T) {
	g := FromEdges(0, 5000)

	if g.WMin != 1 {
		t.Errorf("WMin = %v, want clamp to 1", g.WMin)
	}

	if g.WMax != 50000 {
		t.Errorf("WMax = %v, want 50000", g.WMax)
	}

	if err := g.Validate(); err != nil {
		t.Errorf("clamped grid should validate, got %v", err)
	}
}

func TestFromEdges_BothNonPositive(t *testing.T) {
	// Degenerate specification: no positive edge to anchor the sweep.
	g := FromEdges(0, -5)

	if err := g.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Validate = %v, want ErrInvalidRange", err)
	}

	if _, err := g.Frequencies(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Frequencies err = %v, want ErrInvalidRange", err)
	}
}

func TestGrid_Frequencies(t *testing.T) {
	g := Grid{WMin: 100, WMax: 50000, Points: 1200}

	freqs, err := g.Frequencies()
	if err != nil {
		t.Fatal(err)
	}

	if len(freqs) != 1200 {
		t.Fatalf("len = %d, want 1200", len(freqs))
	}

	if freqs[0] != 100 {
		t.Errorf("first = %v, want exactly 100", freqs[0])
	}

	if freqs[len(freqs)-1] != 50000 {
		t.Errorf("last = %v, want exactly 50000", freqs[len(freqs)-1])
	}

	testutil.RequireStrictlyIncreasing(t, freqs)
	testutil.RequireFinite(t, freqs)
}

func TestGrid_Frequencies_LogSpacing(t *testing.T) {
	g := Grid{WMin: 1, WMax: 1000, Points: 4}

	freqs, err := g.Frequencies()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, freqs, []float64{1, 10, 100, 1000}, 1e-9)
}

func TestGrid_Validate(t *testing.T) {
	cases := []struct {
		name string
		grid Grid
		want error
	}{
		{"ok", Grid{WMin: 1, WMax: 10, Points: 2}, nil},
		{"too few points", Grid{WMin: 1, WMax: 10, Points: 1}, ErrInvalidPoints},
		{"zero min", Grid{WMin: 0, WMax: 10, Points: 10}, ErrInvalidRange},
		{"inverted", Grid{WMin: 10, WMax: 1, Points: 10}, ErrInvalidRange},
		{"equal bounds", Grid{WMin: 10, WMax: 10, Points: 10}, ErrInvalidRange},
		{"nan max", Grid{WMin: 1, WMax: math.NaN(), Points: 10}, ErrInvalidRange},
		{"inf max", Grid{WMin: 1, WMax: math.Inf(1), Points: 10}, ErrInvalidRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.grid.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}
