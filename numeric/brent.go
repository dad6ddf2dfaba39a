package numeric

import (
	"errors"
	"math"
)

// Sentinel errors for the numeric package.
var (
	ErrNoBracket     = errors.New("numeric: root is not bracketed")
	ErrNoConvergence = errors.New("numeric: solver did not converge")
)

const (
	brentTol     = 1e-12
	brentMaxIter = 500
	machEps      = 0x1p-52
)

// Brent finds a root of f inside [x1, x2] using Brent's method: inverse
// quadratic interpolation (falling back to the secant step) guarded by
// bisection, so it converges superlinearly on smooth functions but
// never slower than bisection.
//
// f(x1) and f(x2) must have opposite signs; an endpoint where f is
// exactly zero is returned as-is. Returns ErrNoBracket when both
// endpoints have the same sign and ErrNoConvergence if the iteration
// budget runs out.
func Brent(f func(float64) float64, x1, x2 float64) (float64, error) {
	a, b := x1, x2
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, ErrNoBracket
	}

	c, fc := b, fb
	var d, e float64
	for iter := 0; iter < brentMaxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			// Root left the [b, c] interval: reset c to the old a.
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			// Keep b the best estimate.
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*machEps*math.Abs(b) + 0.5*brentTol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation (secant when a == c).
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				// Interpolation step accepted.
				e = d
				d = p / q
			} else {
				// Interpolation too wild: bisect.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, ErrNoConvergence
}
