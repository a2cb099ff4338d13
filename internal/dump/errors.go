package dump

import (
	"fmt"
	"strings"

	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// Error describes a failed pg_dump invocation. Stderr holds the trailing
// lines of the subprocess output so the server-side cause (bad password,
// unknown database, version mismatch) reaches the user verbatim.
type Error struct {
	Binary   string
	ExitCode int
	Stderr   []string
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Cause != nil {
		fmt.Fprintf(&b, "%s: %v", e.Binary, e.Cause)
	} else {
		fmt.Fprintf(&b, "%s exited with code %d", e.Binary, e.ExitCode)
	}
	for _, line := range e.Stderr {
		b.WriteString("\n    ")
		b.WriteString(line)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return pgsplit.ErrDumpFailed
}
