// Package logging provides logging utilities for retrofit.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("detected signals", "commits", n, "ci", hasCI)
//	logging.Warn("git query failed", "dir", dir, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Classified project as %s", mode)
//	logging.UserSuccess("Installation complete")
//	logging.UserWarning("Optional file missing: %s", path)
//	logging.UserError("Migration failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
