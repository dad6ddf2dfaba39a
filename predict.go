package recall

import (
	"fmt"
	"math"
)

// CacheIndependent precomputes the model-only term of PredictRecall:
// lnΓ(α+β) − lnΓ(α). The value does not depend on elapsed time, so a
// caller ranking one model at many times, or keeping a model resident,
// can compute it once and pass it to PredictRecallCached.
func CacheIndependent(m Model) float64 {
	return lgamma(m.Alpha+m.Beta) - lgamma(m.Alpha)
}

// PredictRecall returns the expected probability of recalling the fact
// tnow time units after its last review.
//
// With exact=false the raw log-domain value is returned instead of the
// probability. It is cheaper to compute and preserves ordering: for any
// two calls the exact=false values compare exactly as the exact=true
// values do, so a caller ranking many facts can stay in log domain and
// exponentiate only the winner. The result is strictly decreasing in
// tnow for a fixed model.
func PredictRecall(m Model, tnow float64, exact bool) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return predictRecall(m, tnow, CacheIndependent(m), exact)
}

// PredictRecallCached is PredictRecall with the model-only term already
// computed by CacheIndependent. The result is identical.
func PredictRecallCached(m Model, tnow, independent float64, exact bool) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return predictRecall(m, tnow, independent, exact)
}

// predictRecall assumes m has already been validated.
func predictRecall(m Model, tnow, independent float64, exact bool) (float64, error) {
	if !(tnow > 0) {
		return 0, fmt.Errorf("%w: tnow=%g", ErrInvalidTime, tnow)
	}
	dt := tnow / m.Time
	ret := lgamma(m.Alpha+dt) - lgamma(m.Alpha+m.Beta+dt) + independent
	if exact {
		return math.Exp(ret), nil
	}
	return ret, nil
}

// lgamma is math.Lgamma restricted to positive arguments, where the
// gamma function is positive and the returned sign is always +1.
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
