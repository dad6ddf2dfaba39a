package recall

import "errors"

// Sentinel errors for the recall package.
// Use errors.Is to check: errors.Is(err, recall.ErrFitDiverged)
var (
	ErrInvalidModel      = errors.New("recall: model parameters out of bounds")
	ErrInvalidTime       = errors.New("recall: elapsed time must be positive")
	ErrInvalidPercentile = errors.New("recall: percentile out of range (0, 1)")
	ErrFitDiverged       = errors.New("recall: posterior moment fit did not converge")
	ErrUnstableMoments   = errors.New("recall: moment computation lost precision")

	// ErrNoBracket indicates the percentile decay search could not
	// bracket a sign change. For valid finite models this cannot
	// happen; treat it as a defect, not a retryable condition.
	ErrNoBracket = errors.New("recall: decay bracket search exhausted")
)
