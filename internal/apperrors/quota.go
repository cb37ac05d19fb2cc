package apperrors

import "fmt"

// QuotaExceededError signals that a free-tier creation ceiling was reached.
// It is an ordinary outcome, not a failure: nothing was written, and the
// caller is expected to turn it into an upgrade prompt using Feature and
// Limit rather than a generic error message.
type QuotaExceededError struct {
	Feature string // e.g. "lots", "staff", "supplies", "tasks"
	Limit   int64  // The free-tier ceiling that was hit
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("free tier limit reached for %s (max %d)", e.Feature, e.Limit)
}
