// Package errors provides typed errors with exit codes for retrofit.
//
// # Error Types
//
// RetrofitError is the base error type that wraps an error with an exit code:
//
//	type RetrofitError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess          = 0  // Success
//	ExitGeneralError     = 1  // General/unknown errors
//	ExitNoRepository     = 2  // Target has no git repository
//	ExitDirtyWorktree    = 3  // Target has uncommitted changes
//	ExitMigrationFailed  = 4  // A migration step failed
//	ExitValidationFailed = 5  // Post-install validation found errors
//	ExitConfigError      = 6  // Configuration error
//	ExitGitError         = 7  // Git operation failed
//	ExitAborted          = 8  // Operator declined a confirmation
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.NoRepository("/path/to/project")
//	errors.DirtyWorktree("/path/to/project")
//	errors.MigrationFailed("skeleton", err)
//	errors.GitError("tag failed", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
