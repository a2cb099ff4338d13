package classify

import (
	"fmt"
	"strings"

	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// ClassificationError reports a statement whose kind is neither recognized
// nor allow-listed. It is fatal: silently dropping an unknown statement
// would produce a snapshot that misrepresents the schema.
type ClassificationError struct {
	Offset  int    // byte offset of the statement body in the dump
	Preview string // leading text of the offending statement
	Reason  string // what the classifier was unable to do
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unrecognized statement at byte %d (%s): %q", e.Offset, e.Reason, e.Preview)
}

// Unwrap ties ClassificationError to pgsplit.ErrClassification for errors.Is.
func (e *ClassificationError) Unwrap() error {
	return pgsplit.ErrClassification
}

// preview trims a statement body down to the leading text shown in errors.
func preview(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	if len(body) > pgsplit.MaxErrorPreviewLength {
		body = body[:pgsplit.MaxErrorPreviewLength] + "..."
	}
	return body
}
