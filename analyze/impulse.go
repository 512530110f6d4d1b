package analyze

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-filterspec/analog"
)

// Errors returned by the impulse preview.
var (
	ErrEmptyCascade     = errors.New("analyze: no active sections")
	ErrInvalidBandwidth = errors.New("analyze: preview bandwidth must be positive")
)

// ImpulsePreview computes a numeric time-domain preview of the cascade
// response: H(jω) is sampled on a uniform grid from 0 to wMax rad/s,
// extended to a hermitian spectrum, and inverse-FFT'd into a real signal.
//
// The result is a rendering aid, not a discretization of the filter — no
// coefficient mapping takes place, so aliasing of response energy above
// wMax is the caller's concern when choosing the bandwidth (a decade above
// the highest section frequency is usually enough). n is the requested
// number of output samples and is rounded up to a power of two, minimum 64.
// The implied time step is π/wMax seconds.
func ImpulsePreview(cas analog.Cascade, wMax float64, n int) ([]float64, error) {
	if cas.Sections == 0 {
		return nil, ErrEmptyCascade
	}

	if wMax <= 0 {
		return nil, ErrInvalidBandwidth
	}

	size := nextPowerOf2(n)
	if size < 64 {
		size = 64
	}

	half := size / 2

	spec := make([]complex128, size)
	for k := 0; k <= half; k++ {
		w := wMax * float64(k) / float64(half)
		spec[k] = cas.TF.Response(w)
	}

	// Hermitian symmetry makes the inverse transform real.
	for k := 1; k < half; k++ {
		spec[size-k] = cmplx.Conj(spec[k])
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("analyze: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, size)

	err = plan.Inverse(out, spec)
	if err != nil {
		return nil, fmt.Errorf("analyze: inverse FFT failed: %w", err)
	}

	ir := make([]float64, size)
	for i := range ir {
		ir[i] = real(out[i])
	}

	return ir, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
