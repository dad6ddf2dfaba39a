package numeric

import "math"

// Tuning constants for LeastSquares. The problems this package serves
// are tiny (a handful of parameters) and smooth, so the budgets are
// generous relative to the work per iteration.
const (
	lmMaxIter    = 200
	lmFTol       = 1e-12 // residual sup norm: system solved
	lmXTol       = 1e-12 // relative step size: iterates stationary
	lmGTol       = 1e-10 // projected gradient sup norm: constrained minimum
	lmDiffStep   = 1e-7  // relative central-difference step
	lmLambdaInit = 1e-3
	lmLambdaUp   = 4.0
	lmLambdaDown = 0.25
	lmLambdaMax  = 1e12
	lmLambdaMin  = 1e-12
)

// LeastSquares minimizes ‖f(x)‖² subject to lower ≤ x ≤ upper using
// Levenberg–Marquardt with Marquardt diagonal scaling.
//
// The Jacobian comes from numerical central differences, shortened to
// one-sided steps at the box boundary. Trial steps are projected back
// onto the box before evaluation. Iteration stops when the residual
// vanishes, the step size stalls, or the gradient projected onto the
// feasible directions vanishes (a minimum pressed against a bound).
//
// The initial guess x0 is clamped into the box and not mutated.
// Returns ErrNoConvergence when the damping or iteration budget runs
// out, or when the residual is not finite at the starting point.
func LeastSquares(f func([]float64) []float64, x0, lower, upper []float64) ([]float64, error) {
	n := len(x0)
	x := clampVec(append([]float64(nil), x0...), lower, upper)
	r := f(x)
	cost := sumSq(r)
	if !isFinite(cost) {
		return nil, ErrNoConvergence
	}

	lambda := lmLambdaInit
	for iter := 0; iter < lmMaxIter; iter++ {
		if supNorm(r) < lmFTol {
			return x, nil
		}

		jac := jacobian(f, x, lower, upper)
		grad := make([]float64, n)   // Jᵀr
		hess := make([][]float64, n) // JᵀJ (Gauss-Newton approximation)
		for j := 0; j < n; j++ {
			hess[j] = make([]float64, n)
		}
		for j := 0; j < n; j++ {
			for i := range r {
				grad[j] += jac[i][j] * r[i]
			}
			for k := j; k < n; k++ {
				var s float64
				for i := range r {
					s += jac[i][j] * jac[i][k]
				}
				hess[j][k] = s
				hess[k][j] = s
			}
		}

		if supNorm(projectGradient(grad, x, lower, upper)) < lmGTol {
			return x, nil
		}

		// Damped trial steps until one reduces the cost.
		accepted := false
		for !accepted {
			damped := make([][]float64, n)
			rhs := make([]float64, n)
			for j := 0; j < n; j++ {
				damped[j] = append([]float64(nil), hess[j]...)
				if hess[j][j] != 0 {
					damped[j][j] = hess[j][j] * (1 + lambda)
				} else {
					damped[j][j] = lambda
				}
				rhs[j] = -grad[j]
			}

			step, ok := solve(damped, rhs)
			if ok {
				trial := make([]float64, n)
				for j := 0; j < n; j++ {
					trial[j] = x[j] + step[j]
				}
				trial = clampVec(trial, lower, upper)

				rt := f(trial)
				ct := sumSq(rt)
				if isFinite(ct) && ct < cost {
					moved := 0.0
					for j := 0; j < n; j++ {
						moved = math.Max(moved, math.Abs(trial[j]-x[j]))
					}
					x, r, cost = trial, rt, ct
					lambda = math.Max(lambda*lmLambdaDown, lmLambdaMin)
					accepted = true
					if moved < lmXTol*(1+supNorm(x)) {
						return x, nil
					}
					continue
				}
			}

			lambda *= lmLambdaUp
			if lambda > lmLambdaMax {
				return nil, ErrNoConvergence
			}
		}
	}
	return nil, ErrNoConvergence
}

// jacobian computes ∂f/∂x by central differences, clamping the probe
// points into the box; at a bound this degrades to a one-sided
// difference with the correct shortened denominator.
func jacobian(f func([]float64) []float64, x, lower, upper []float64) [][]float64 {
	n := len(x)
	probe := func(j int, h float64) []float64 {
		p := append([]float64(nil), x...)
		p[j] += h
		return clampVec(p, lower, upper)
	}

	var jac [][]float64
	for j := 0; j < n; j++ {
		h := lmDiffStep * math.Max(1, math.Abs(x[j]))
		hi := probe(j, h)
		lo := probe(j, -h)
		den := hi[j] - lo[j]

		rhi := f(hi)
		rlo := f(lo)
		if jac == nil {
			jac = make([][]float64, len(rhi))
			for i := range jac {
				jac[i] = make([]float64, n)
			}
		}
		for i := range rhi {
			if den != 0 {
				jac[i][j] = (rhi[i] - rlo[i]) / den
			}
		}
	}
	return jac
}

// projectGradient zeroes the components of the descent direction -grad
// that point out of the box at an active bound, leaving the directions
// the iterate is still free to move in.
func projectGradient(grad, x, lower, upper []float64) []float64 {
	out := make([]float64, len(grad))
	for j := range grad {
		descent := -grad[j]
		if x[j] <= lower[j] && descent < 0 {
			continue
		}
		if x[j] >= upper[j] && descent > 0 {
			continue
		}
		out[j] = descent
	}
	return out
}

// solve performs Gaussian elimination with partial pivoting on the
// (small, dense) system a·x = b. Reports false for a singular system.
// Both arguments are clobbered.
func solve(a [][]float64, b []float64) ([]float64, bool) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if a[pivot][col] == 0 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < n; row++ {
			m := a[row][col] / a[col][col]
			for k := col; k < n; k++ {
				a[row][k] -= m * a[col][k]
			}
			b[row] -= m * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		s := b[row]
		for k := row + 1; k < n; k++ {
			s -= a[row][k] * x[k]
		}
		x[row] = s / a[row][row]
	}
	return x, true
}

func clampVec(x, lower, upper []float64) []float64 {
	for j := range x {
		if x[j] < lower[j] {
			x[j] = lower[j]
		}
		if x[j] > upper[j] {
			x[j] = upper[j]
		}
	}
	return x
}

func sumSq(r []float64) float64 {
	var s float64
	for _, v := range r {
		s += v * v
	}
	return s
}

func supNorm(r []float64) float64 {
	var m float64
	for _, v := range r {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
