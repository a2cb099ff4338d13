package pgsplit

import (
	"errors"
)

// Sentinel errors for the failure classes of a split run.
// Concrete error values carry context (byte offset, statement prefix,
// object identity) and wrap one of these so callers can classify with
// errors.Is().
//
// Example usage:
//
//	_, err := engine.Split(dump)
//	if errors.Is(err, pgsplit.ErrClassification) {
//	    // an unexpected statement shape; extend the allow-list or investigate
//	}
var (
	// ErrScan indicates the dump text could not be tokenized into
	// statements (unterminated quote or comment).
	ErrScan = errors.New("scan failed")

	// ErrClassification indicates a statement kind that is neither
	// recognized nor on the ignorable allow-list.
	ErrClassification = errors.New("unrecognized statement")

	// ErrAggregation indicates a dump consistency violation, such as two
	// primary definitions for the same object.
	ErrAggregation = errors.New("aggregation failed")

	// ErrPathCollision indicates two distinct objects resolved to the same
	// output path.
	ErrPathCollision = errors.New("path collision")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDumpFailed indicates the pg_dump subprocess failed.
	ErrDumpFailed = errors.New("pg_dump failed")

	// ErrOutputExists indicates the output path already exists. Existing
	// output is never overwritten: a half-replaced tree would not be a
	// trustworthy snapshot.
	ErrOutputExists = errors.New("output already exists")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrScan):
		return ExitScanError
	case errors.Is(err, ErrClassification):
		return ExitClassificationError
	case errors.Is(err, ErrAggregation):
		return ExitAggregationError
	case errors.Is(err, ErrPathCollision):
		return ExitPathCollision
	case errors.Is(err, ErrDumpFailed):
		return ExitDumpFailed
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrOutputExists):
		return ExitConfigError
	}

	return ExitGeneralError
}
