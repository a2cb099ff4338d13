package scan

import (
	"fmt"

	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// ScanError reports an unterminated quoted region or comment. It is fatal
// for the whole run: an incomplete statement stream cannot yield a
// trustworthy schema snapshot.
type ScanError struct {
	Offset  int    // byte offset where the unterminated region began
	Region  string // human-readable region kind ("string literal", ...)
	Message string // optional override of the default message
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("scan failed at byte %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("scan failed at byte %d: unterminated %s at end of input", e.Offset, e.Region)
}

// Unwrap ties ScanError to the pgsplit.ErrScan sentinel for errors.Is.
func (e *ScanError) Unwrap() error {
	return pgsplit.ErrScan
}
