package errortypes

import (
	"fmt"
	"strings"
)

// AggregateErrors groups the Error severity findings of one decode under a single
// message so callers that only want an error value can still see every problem.
type AggregateErrors struct {
	Message string
	Errors  []error
}

func NewAggregateErrors(msg string, errs []error) AggregateErrors {
	return AggregateErrors{Message: msg, Errors: errs}
}

// Error renders one numbered line per error. It is empty when nothing was
// aggregated.
func (e AggregateErrors) Error() string {
	n := len(e.Errors)
	if n == 0 {
		return ""
	}

	noun := "errors"
	if n == 1 {
		noun = "error"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d %s):\n", e.Message, n, noun)
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d: %v\n", i+1, err)
	}
	return sb.String()
}

func (e AggregateErrors) Unwrap() []error {
	return e.Errors
}
