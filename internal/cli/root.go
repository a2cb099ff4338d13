package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `                     _ _ _
 _ __   __ _ ___ _ __ | (_) |_
| '_ \ / _` + "`" + ` / __| '_ \| | | __|
| |_) | (_| \__ \ |_) | | | |_
| .__/ \__, |___/ .__/|_|_|\__|
|_|    |___/    |_|`

var rootCmd = &cobra.Command{
	Use:   "pgsplit",
	Short: "Split a pg_dump schema dump into per-object SQL files",
	Long: asciiLogo + `

pgsplit reads a plain-text schema-only pg_dump and rewrites it as a tree of
per-object SQL files under canonical <schema>/<CATEGORY>/<name>.sql paths,
serialized as a byte-deterministic tar archive or a plain directory.

Every statement belonging to one object (its definition, ownership, grants,
comments, defaults) lands in that object's file, in a canonical order that
does not depend on the order pg_dump emitted it. Two dumps of equivalent
schemas therefore split into byte-identical archives, which makes schema
snapshots diffable and versionable.

Exit Codes:
  0  - Success
  1  - General error (diff found differences)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  20 - Dump could not be scanned (unterminated quote or comment)
  21 - Statement not recognized and not allow-listed
  22 - Dump inconsistency (duplicate object definition)
  23 - Two objects resolved to the same output path
  24 - pg_dump subprocess failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for pgsplit")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
