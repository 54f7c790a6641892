package tradetalk

import "errors"

// Validation errors, surfaced one at a time: the first failing rule wins and
// is the only one reported.
var (
	ErrMissingData       = errors.New("missing day data")
	ErrMoodRequired      = errors.New("select your mood")
	ErrNoTrades          = errors.New("add at least one trade")
	ErrPairRequired      = errors.New("select a pair for all trades")
	ErrAmountRequired    = errors.New("enter an amount for all trades")
	ErrTimeRequired      = errors.New("enter a time for all trades")
	ErrAmountNotNumber   = errors.New("amount must be a valid number")
	ErrAmountNotPositive = errors.New("amount must be greater than 0")
)

var (
	ErrDayNotFound      = errors.New("trading day not found")
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrAnalysisSaveFailed marks an analysis that came back from the endpoint
	// but could not be persisted. Callers must not treat the run as saved.
	ErrAnalysisSaveFailed = errors.New("failed to save analysis")
)

var validationErrs = []error{
	ErrMissingData,
	ErrMoodRequired,
	ErrNoTrades,
	ErrPairRequired,
	ErrAmountRequired,
	ErrTimeRequired,
	ErrAmountNotNumber,
	ErrAmountNotPositive,
}

// IsValidationError reports whether err is one of the local, synchronous
// validation failures that never reach storage.
func IsValidationError(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
