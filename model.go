package recall

import "fmt"

// Model is a Beta prior on recall probability: the probability of
// recalling a fact Time units after its last review is distributed
// Beta(Alpha, Beta). When Alpha == Beta, Time is the fact's half-life.
//
// Model is an immutable value. UpdateRecall returns a new Model and
// never mutates its input; the caller owns persistence between quizzes.
type Model struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Time  float64 `json:"t"`
}

// DefaultModel creates a Model from a half-life guess.
// Zero-value fields receive defaults: Alpha=3.0, Beta=Alpha.
// With Alpha == Beta the halflife argument is a true half-life, which
// makes this the recommended prior for newly learned facts.
func DefaultModel(halflife, alpha, beta float64) Model {
	if alpha == 0 {
		alpha = 3.0
	}
	if beta == 0 {
		beta = alpha
	}
	return Model{Alpha: alpha, Beta: beta, Time: halflife}
}

// Validate checks that all three parameters are positive and finite
// enough to compute with. The negated comparisons also reject NaN.
func (m Model) Validate() error {
	if !(m.Alpha > 0) || !(m.Beta > 0) || !(m.Time > 0) {
		return fmt.Errorf("%w: alpha=%g beta=%g t=%g", ErrInvalidModel, m.Alpha, m.Beta, m.Time)
	}
	return nil
}

// gb1 is a generalized Beta distribution of the first kind at a
// reference elapsed time: recall probability is b·X^(1/a) with
// X ~ Beta(p, q). It exists only inside UpdateRecall, where the
// posterior is naturally GB1-shaped; callers only ever see Model.
type gb1 struct {
	a, b, p, q, t float64
}

// toBeta converts the GB1 back to a Beta model: p and q carry over as
// Alpha and Beta, and the reference time is rescaled by the exponent a.
// Exact for the success branch of UpdateRecall, a moment-matched
// approximation for the failure branch.
func (g gb1) toBeta() Model {
	return Model{Alpha: g.p, Beta: g.q, Time: g.t * g.a}
}
