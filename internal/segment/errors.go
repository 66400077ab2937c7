package segment

import "fmt"

// ValidationError reports a malformed filter. It identifies the
// offending field/operator/value so the caller can correct the request.
// It never reaches the storage engine.
type ValidationError struct {
	Field    string
	Operator Operator
	Value    interface{}
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Operator == "" {
		return fmt.Sprintf("invalid filter on %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid filter on %q (operator %q): %s", e.Field, e.Operator, e.Reason)
}

// ConfigurationError indicates an inconsistency between the validator's
// and the compiler's whitelists: a request the validator accepted hit a
// missing schema or operator-table entry. It is an internal fault.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "segmentation configuration error: " + e.Detail
}

// QueryExecutionError wraps a storage engine connectivity or
// statement-execution fault. The read is idempotent, so callers may
// retry; the compiler itself never does.
type QueryExecutionError struct {
	Err error
}

func (e *QueryExecutionError) Error() string {
	return "query execution failed: " + e.Err.Error()
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}
