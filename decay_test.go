package recall

import (
	"errors"
	"math"
	"testing"
)

func TestModelToPercentileDecayHalfLife(t *testing.T) {
	// alpha == beta makes the reference time the true half-life.
	m := Model{Alpha: 3, Beta: 3, Time: 10}
	got, err := ModelToPercentileDecay(m, 0.5)
	if err != nil {
		t.Fatalf("ModelToPercentileDecay: %v", err)
	}
	assertFloat(t, "half-life", got, 10)
}

func TestHalfLifeRecoversReference(t *testing.T) {
	for _, ref := range []float64{0.1, 1, 24, 1000} {
		m := DefaultModel(ref, 0, 0)
		got, err := HalfLife(m)
		if err != nil {
			t.Fatalf("HalfLife(ref=%g): %v", ref, err)
		}
		if math.Abs(got-ref)/ref > 1e-6 {
			t.Errorf("HalfLife(ref=%g) = %g", ref, got)
		}
	}
}

func TestModelToPercentileDecayRoundTrip(t *testing.T) {
	// The decay time is the inverse of PredictRecall: predicting at the
	// returned time recovers the percentile.
	models := []Model{
		{Alpha: 3, Beta: 3, Time: 10},
		{Alpha: 12, Beta: 3, Time: 7},
		{Alpha: 2, Beta: 5, Time: 0.5},
	}
	percentiles := []float64{0.05, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99}
	for _, m := range models {
		for _, p := range percentiles {
			decay, err := ModelToPercentileDecay(m, p)
			if err != nil {
				t.Fatalf("ModelToPercentileDecay(%+v, %g): %v", m, p, err)
			}
			got, err := PredictRecall(m, decay, true)
			if err != nil {
				t.Fatalf("PredictRecall: %v", err)
			}
			if math.Abs(got-p) > 1e-6 {
				t.Errorf("PredictRecall(%+v, decay(%g)) = %.8f, want %g", m, p, got, p)
			}
		}
	}
}

func TestModelToPercentileDecayMonotone(t *testing.T) {
	// Lower percentiles take longer to reach.
	m := Model{Alpha: 3, Beta: 3, Time: 10}
	t30, err := ModelToPercentileDecay(m, 0.3)
	if err != nil {
		t.Fatalf("ModelToPercentileDecay: %v", err)
	}
	t70, err := ModelToPercentileDecay(m, 0.7)
	if err != nil {
		t.Fatalf("ModelToPercentileDecay: %v", err)
	}
	if t30 <= t70 {
		t.Errorf("decay(0.3) = %g, want above decay(0.7) = %g", t30, t70)
	}
}

func TestModelToPercentileDecayFarBrackets(t *testing.T) {
	// Percentiles close to 0 or 1 force the window to slide before a
	// sign change appears.
	m := Model{Alpha: 3, Beta: 3, Time: 10}
	for _, p := range []float64{0.999, 0.001} {
		decay, err := ModelToPercentileDecay(m, p)
		if err != nil {
			t.Fatalf("ModelToPercentileDecay(%g): %v", p, err)
		}
		got, err := PredictRecall(m, decay, true)
		if err != nil {
			t.Fatalf("PredictRecall: %v", err)
		}
		if math.Abs(got-p)/p > 1e-4 {
			t.Errorf("round trip at %g: got %.8f", p, got)
		}
	}
}

func TestModelToPercentileDecayInvalidPercentile(t *testing.T) {
	m := Model{Alpha: 3, Beta: 3, Time: 10}
	for _, p := range []float64{0, 1, -0.5, 2, math.NaN()} {
		_, err := ModelToPercentileDecay(m, p)
		if !errors.Is(err, ErrInvalidPercentile) {
			t.Errorf("percentile %g: err = %v, want ErrInvalidPercentile", p, err)
		}
	}
}

func TestModelToPercentileDecayInvalidModel(t *testing.T) {
	_, err := ModelToPercentileDecay(Model{Alpha: 3, Beta: 3, Time: -1}, 0.5)
	if !errors.Is(err, ErrInvalidModel) {
		t.Errorf("err = %v, want ErrInvalidModel", err)
	}
}
