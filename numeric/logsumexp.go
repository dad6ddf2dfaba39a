package numeric

import "math"

// LogSumExp evaluates ln|Σ signs[i]·exp(logs[i])| with max shifting,
// returning the log magnitude and the sign of the true sum (+1, -1, or
// 0 when the terms cancel exactly). Missing signs default to +1.
//
// Shifting by the largest term keeps the subtraction of nearly equal
// quantities in the shifted linear domain, where it costs only the
// precision actually lost to cancellation; exponentiating first and
// subtracting would overflow or lose everything for large inputs.
func LogSumExp(logs, signs []float64) (float64, float64) {
	if len(logs) == 0 {
		return math.Inf(-1), 0
	}

	shift := math.Inf(-1)
	for _, v := range logs {
		if v > shift {
			shift = v
		}
	}
	if math.IsInf(shift, -1) {
		return math.Inf(-1), 0
	}

	var sum float64
	for i, v := range logs {
		s := 1.0
		if i < len(signs) {
			s = signs[i]
		}
		sum += s * math.Exp(v-shift)
	}

	switch {
	case sum > 0:
		return shift + math.Log(sum), 1
	case sum < 0:
		return shift + math.Log(-sum), -1
	default:
		return math.Inf(-1), 0
	}
}
