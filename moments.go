package recall

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/recall-labs/recall/numeric"
)

// GB1Moments returns the first num raw moments of a GB1(a, b, p, q)
// distribution, in log domain unless returnLog is false.
//
// The h-th raw moment has the closed form
//
//	E[Xʰ] = bʰ · B(p + h/a, q) / B(p, q)
//
// Arguments are assumed valid (a nonzero, b, p, q positive); invalid
// inputs yield NaN rather than an error, matching the function's role
// as a formula, not an entry point.
func GB1Moments(a, b, p, q float64, num int, returnLog bool) []float64 {
	bpq := mathext.Lbeta(p, q)
	logb := math.Log(b)
	out := make([]float64, num)
	for i := range out {
		h := float64(i + 1)
		out[i] = h*logb + mathext.Lbeta(p+h/a, q) - bpq
	}
	if !returnLog {
		for i, v := range out {
			out[i] = math.Exp(v)
		}
	}
	return out
}

// FailureMoments returns the first num raw moments of the posterior on
// recall probability at elapsed time tnow, conditioned on a failed
// quiz. Moments are in log domain unless returnLog is false.
//
// With δ = tnow/t and s[n] = lnΓ(α+nδ) − lnΓ(α+β+nδ), the n-th
// failure-conditioned moment is
//
//	(exp(s[n]) − exp(s[n+1])) / (exp(s[0]) − exp(s[1]))
//
// evaluated via signed log-sum-exp. The differences cancel almost
// completely for large α, so linear-domain subtraction is not an
// option; if cancellation still produces a non-positive value the
// prior is malformed and ErrUnstableMoments is returned.
//
// UpdateRecall consumes exactly the first two moments.
func FailureMoments(m Model, tnow float64, num int, returnLog bool) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !(tnow > 0) {
		return nil, fmt.Errorf("%w: tnow=%g", ErrInvalidTime, tnow)
	}

	dt := tnow / m.Time
	s := make([]float64, num+2)
	for n := range s {
		nd := float64(n) * dt
		s[n] = lgamma(m.Alpha+nd) - lgamma(m.Alpha+m.Beta+nd)
	}

	marginal, sign := numeric.LogSumExp([]float64{s[0], s[1]}, []float64{1, -1})
	if sign <= 0 {
		return nil, fmt.Errorf("%w: non-positive failure marginal", ErrUnstableMoments)
	}

	out := make([]float64, num)
	for n := 1; n <= num; n++ {
		v, sgn := numeric.LogSumExp([]float64{s[n], s[n+1]}, []float64{1, -1})
		if sgn <= 0 {
			return nil, fmt.Errorf("%w: non-positive moment %d", ErrUnstableMoments, n)
		}
		out[n-1] = v - marginal
	}
	if !returnLog {
		for i, v := range out {
			out[i] = math.Exp(v)
		}
	}
	return out, nil
}
