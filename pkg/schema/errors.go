package schema

import "fmt"

// ValidationError reports a single attribute failing validation.
type ValidationError struct {
	Attr   string // attribute name
	Reason string // human-readable reason
	Value  any    // offending value, nil when the attribute was absent
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("attr %q: %s", e.Attr, e.Reason)
	}
	return fmt.Sprintf("attr %q: %s (got %T)", e.Attr, e.Reason, e.Value)
}

// AggregateError bundles every validation failure found in one pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors unpacks an *AggregateError, or returns nil for any
// other error value.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
