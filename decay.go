package recall

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/recall-labs/recall/numeric"
)

// bracketWidth is the sliding window width, in log-delta units, used
// when hunting for a sign change around the target percentile.
const bracketWidth = 6.0

// maxBracketSlides bounds the hunt. Expected recall is monotone in
// elapsed time, so for any valid finite model the window crosses the
// percentile long before this; hitting the bound means a defect.
const maxBracketSlides = 200

// ModelToPercentileDecay returns the elapsed time at which the expected
// recall probability decays to the given percentile, the inverse of
// PredictRecall: PredictRecall(m, decay, true) ≈ percentile.
//
// The search runs in log-delta space (δ = elapsed/t) for range safety:
// a fixed-width window slides in the direction indicated by the sign of
// the objective until a sign change is bracketed, then Brent's method
// finishes.
func ModelToPercentileDecay(m Model, percentile float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if !(percentile > 0 && percentile < 1) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidPercentile, percentile)
	}

	logBab := mathext.Lbeta(m.Alpha, m.Beta)
	logPercentile := math.Log(percentile)

	// Log expected recall at e^lnDelta, minus the log target.
	// Positive when recall is still above the percentile.
	f := func(lnDelta float64) float64 {
		return mathext.Lbeta(m.Alpha+math.Exp(lnDelta), m.Beta) - logBab - logPercentile
	}

	lo, hi := -bracketWidth/2, bracketWidth/2
	flo, fhi := f(lo), f(hi)

	slides := 0
	for flo > 0 && fhi > 0 { // still above target at both ends: slide up
		if slides++; slides > maxBracketSlides {
			return 0, fmt.Errorf("%w: no sign change above lnDelta=%g", ErrNoBracket, lo)
		}
		lo, flo = hi, fhi
		hi += bracketWidth
		fhi = f(hi)
	}
	for flo < 0 && fhi < 0 { // already below target at both ends: slide down
		if slides++; slides > maxBracketSlides {
			return 0, fmt.Errorf("%w: no sign change below lnDelta=%g", ErrNoBracket, hi)
		}
		hi, fhi = lo, flo
		lo -= bracketWidth
		flo = f(lo)
	}
	if !(flo >= 0 && fhi <= 0) {
		return 0, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoBracket, lo, flo, hi, fhi)
	}

	root, err := numeric.Brent(f, lo, hi)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoBracket, err)
	}
	return math.Exp(root) * m.Time, nil
}

// HalfLife returns the elapsed time at which expected recall drops to
// one half. For a DefaultModel prior this recovers the half-life guess
// the model was created with.
func HalfLife(m Model) (float64, error) {
	return ModelToPercentileDecay(m, 0.5)
}
