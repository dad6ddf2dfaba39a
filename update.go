package recall

import (
	"fmt"
	"math"

	"github.com/recall-labs/recall/numeric"
)

// betaFloor is the lower bound on the fitted Beta parameter in the
// failure branch. Values at or below 1 give degenerate posteriors.
const betaFloor = 1.01

// UpdateRecall folds one quiz outcome into the prior and returns the
// posterior model. The prior is not mutated.
//
// A successful quiz has an exact closed-form posterior: with δ = tnow/t
// the posterior is GB1(1/δ, 1, α+δ, β) at tnow, which converts back to
// Beta(α+δ, β) at reference time t.
//
// A failed quiz has no posterior inside the Beta family, so the
// posterior's first two moments are matched by a GB1(1/δ', 1, α, β')
// via bounded least squares, with β' ≥ 1.01 and δ' ≥ 0 and the prior's
// own (β, δ) as the initial guess. If the fit does not converge the
// update fails with ErrFitDiverged and no partial result; the caller
// may retry or reject the quiz.
func UpdateRecall(prior Model, result bool, tnow float64) (Model, error) {
	if err := prior.Validate(); err != nil {
		return Model{}, err
	}
	if !(tnow > 0) {
		return Model{}, fmt.Errorf("%w: tnow=%g", ErrInvalidTime, tnow)
	}

	dt := tnow / prior.Time
	if result {
		g := gb1{a: 1 / dt, b: 1, p: prior.Alpha + dt, q: prior.Beta, t: tnow}
		return g.toBeta(), nil
	}

	target, err := FailureMoments(prior, tnow, 2, true)
	if err != nil {
		return Model{}, err
	}

	residual := func(x []float64) []float64 {
		b, d := x[0], x[1]
		got := GB1Moments(1/d, 1, prior.Alpha, b, 2, true)
		return []float64{got[0] - target[0], got[1] - target[1]}
	}
	fit, err := numeric.LeastSquares(residual,
		[]float64{prior.Beta, dt},
		[]float64{betaFloor, 0},
		[]float64{math.Inf(1), math.Inf(1)})
	if err != nil {
		return Model{}, fmt.Errorf("%w: %v", ErrFitDiverged, err)
	}

	newBeta, newDelta := fit[0], fit[1]
	g := gb1{a: 1 / newDelta, b: 1, p: prior.Alpha, q: newBeta, t: tnow}
	return g.toBeta(), nil
}
