package calculation

import "fmt"

// ValidationError reports malformed or out-of-domain scenario parameters.
// These are caller-correctable and reported before any computation runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ComputationError reports a degenerate numeric configuration, such as a
// zero-year amortization term. Input validation should prevent these from
// being reached at runtime.
type ComputationError struct {
	Op     string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
