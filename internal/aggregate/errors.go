package aggregate

import (
	"fmt"

	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// AggregationError reports a dump consistency violation, such as two
// primary definitions for the same object identity. It is fatal: picking
// one definition silently would hide a real problem in the dump.
type AggregationError struct {
	Ref     pgsplit.ObjectRef
	Message string
}

// Error implements the error interface.
func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed for %s: %s", e.Ref, e.Message)
}

// Unwrap ties AggregationError to pgsplit.ErrAggregation for errors.Is.
func (e *AggregationError) Unwrap() error {
	return pgsplit.ErrAggregation
}
