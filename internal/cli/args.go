package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireInput validates that at most one input argument is provided.
// The argument may also be omitted entirely when --conninfo is used, so
// zero arguments is not rejected here; runSplit resolves the input source.
func RequireInput(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireTwoArchives validates that exactly two archive arguments are
// provided. Returns a helpful error message with usage if not.
func RequireTwoArchives(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf(`requires exactly 2 arguments: <archive_a> <archive_b>

Usage: %s <archive_a> <archive_b>

Example:
  %s before.tar after.tar`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
