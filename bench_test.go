package recall_test

import (
	"testing"

	"github.com/recall-labs/recall"
)

// BenchmarkPredictRecall measures a single log-domain prediction.
// Target: < 200ns/op.
func BenchmarkPredictRecall(b *testing.B) {
	m := recall.DefaultModel(10, 0, 0)
	for i := 0; i < b.N; i++ {
		if _, err := recall.PredictRecall(m, 7, false); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPredictRecallCached measures prediction with the
// model-only term precomputed.
func BenchmarkPredictRecallCached(b *testing.B) {
	m := recall.DefaultModel(10, 0, 0)
	independent := recall.CacheIndependent(m)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := recall.PredictRecallCached(m, 7, independent, false); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpdateRecallSuccess measures the closed-form branch.
// Target: < 500ns/op.
func BenchmarkUpdateRecallSuccess(b *testing.B) {
	m := recall.DefaultModel(10, 0, 0)
	for i := 0; i < b.N; i++ {
		if _, err := recall.UpdateRecall(m, true, 5); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpdateRecallFailure measures the moment-matching branch,
// dominated by the least-squares fit. Target: < 100μs/op.
func BenchmarkUpdateRecallFailure(b *testing.B) {
	m := recall.DefaultModel(10, 0, 0)
	for i := 0; i < b.N; i++ {
		if _, err := recall.UpdateRecall(m, false, 5); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkModelToPercentileDecay measures the bracket search plus
// root solve. Target: < 20μs/op.
func BenchmarkModelToPercentileDecay(b *testing.B) {
	m := recall.DefaultModel(10, 0, 0)
	for i := 0; i < b.N; i++ {
		if _, err := recall.ModelToPercentileDecay(m, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}
