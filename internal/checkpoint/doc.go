// Package checkpoint gates mutation behind a git rollback point.
//
// Before the migration engine touches any file, Ensure verifies the target
// is a repository (offering to initialize one in commit mode), resolves
// uncommitted changes with operator consent, and force-moves the
// retrofit-start tag to HEAD. Rollback is always explicit:
//
//	git reset --hard retrofit-start
//
// Local-only installs against a non-repository skip the checkpoint since
// they never commit anything.
package checkpoint
