// Package recall implements the Ebisu Bayesian model of memory recall.
//
// recall maintains a Beta-distributed prior on the probability that a
// learner still remembers a fact, predicts how that probability decays
// with elapsed time, and updates the prior from binary quiz outcomes.
// A scheduler deciding when to quiz, and storage for per-fact models,
// are left to the caller; every function here is pure.
//
// Basic usage:
//
//	m := recall.DefaultModel(24, 0, 0) // half-life guess: 24 hours
//
//	p, err := recall.PredictRecall(m, 30, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err = recall.UpdateRecall(m, true, 30)
package recall
