package recall

import "fmt"

// QuizEvent records a single quiz of a fact: whether the learner
// recalled it, and the time elapsed since the previous review.
type QuizEvent struct {
	Result  bool    `json:"result"`
	Elapsed float64 `json:"elapsed"`
}

// Replay folds a quiz history into the prior, applying UpdateRecall
// once per event in order, and returns the final posterior. Rebuilding
// a model from its full history this way is useful after changing the
// initial prior or recovering from lost state.
//
// The first error aborts the replay; the partially updated model is
// not returned.
func Replay(prior Model, events []QuizEvent) (Model, error) {
	m := prior
	for i, ev := range events {
		next, err := UpdateRecall(m, ev.Result, ev.Elapsed)
		if err != nil {
			return Model{}, fmt.Errorf("recall: replay event %d: %w", i, err)
		}
		m = next
	}
	return m, nil
}
