package layout

import (
	"fmt"

	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// PathCollisionError reports two distinct objects resolving to the same
// output path. It is fatal: the tool cannot safely decide which object the
// file should represent.
type PathCollisionError struct {
	Path string
	A, B pgsplit.ObjectRef
}

// Error implements the error interface.
func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("path collision at %q between %s and %s", e.Path, e.A, e.B)
}

// Unwrap ties PathCollisionError to pgsplit.ErrPathCollision for errors.Is.
func (e *PathCollisionError) Unwrap() error {
	return pgsplit.ErrPathCollision
}
