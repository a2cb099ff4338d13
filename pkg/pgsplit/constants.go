package pgsplit

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess             = 0  // Split or diff completed successfully
	ExitGeneralError        = 1  // Unknown or unclassified error
	ExitUsageError          = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic               = 3  // Internal panic (unexpected crash)
	ExitConfigError         = 10 // Invalid configuration or parameters
	ExitScanError           = 20 // Unterminated quote or comment in the dump
	ExitClassificationError = 21 // Statement kind not recognized and not allow-listed
	ExitAggregationError    = 22 // Dump inconsistency (duplicate object definition)
	ExitPathCollision       = 23 // Two objects resolved to the same output path
	ExitDumpFailed          = 24 // pg_dump subprocess failed
)

const (
	// MaxErrorPreviewLength is the maximum number of characters of a
	// statement shown in error messages. This keeps classification errors
	// readable even when the offending statement is a multi-kilobyte body.
	MaxErrorPreviewLength = 120

	// IndexFileName is the root include script listing every emitted file.
	IndexFileName = "index.sql"

	// SQLFileSuffix is the suffix of every per-object output file.
	SQLFileSuffix = ".sql"
)
