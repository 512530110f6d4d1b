package analog

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSection_Valid(t *testing.T) {
	cases := []struct {
		name    string
		section Section
		want    bool
	}{
		{"typical", Section{NaturalFreq: 1000, Q: 0.707}, true},
		{"high q", Section{NaturalFreq: 50, Q: 20}, true},
		{"zero freq", Section{NaturalFreq: 0, Q: 1}, false},
		{"negative freq", Section{NaturalFreq: -100, Q: 1}, false},
		{"zero q", Section{NaturalFreq: 1000, Q: 0}, false},
		{"negative q", Section{NaturalFreq: 1000, Q: -0.5}, false},
		{"nan freq", Section{NaturalFreq: math.NaN(), Q: 1}, false},
		{"inf freq", Section{NaturalFreq: math.Inf(1), Q: 1}, false},
		{"nan q", Section{NaturalFreq: 1000, Q: math.NaN()}, false},
		{"inf q", Section{NaturalFreq: 1000, Q: math.Inf(1)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.section.Valid(); got != tc.want {
				t.Errorf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSection_Valid_IgnoresNameAndEnabled(t *testing.T) {
	// Validity depends only on the numeric parameters.
	s := Section{Name: "", NaturalFreq: 1000, Q: 1, Enabled: false}
	if !s.Valid() {
		t.Error("disabled section with valid parameters should still be Valid")
	}
}

func TestSection_TF_Coefficients(t *testing.T) {
	s := Section{NaturalFreq: 1000, Q: 2}
	tf := s.TF()

	wantNum := []float64{1e6}
	wantDen := []float64{1, 500, 1e6}

	if len(tf.Num) != 1 || !almostEqual(tf.Num[0], wantNum[0], eps) {
		t.Errorf("Num = %v, want %v", tf.Num, wantNum)
	}

	if len(tf.Den) != 3 {
		t.Fatalf("Den length = %d, want 3", len(tf.Den))
	}

	for i := range wantDen {
		if !almostEqual(tf.Den[i], wantDen[i], 1e-9) {
			t.Errorf("Den[%d] = %v, want %v", i, tf.Den[i], wantDen[i])
		}
	}
}

func TestSection_TF_UnityDCGain(t *testing.T) {
	// H(0) = ω0²/ω0² = 1 regardless of Q.
	for _, s := range []Section{
		{NaturalFreq: 10, Q: 0.5},
		{NaturalFreq: 1000, Q: 0.707},
		{NaturalFreq: 2e4, Q: 10},
	} {
		h := s.TF().Response(0)
		if !almostEqual(real(h), 1, eps) || !almostEqual(imag(h), 0, eps) {
			t.Errorf("ω0=%v Q=%v: H(0) = %v, want 1", s.NaturalFreq, s.Q, h)
		}
	}
}
