package checkpoint

import (
	"context"

	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/errors"
	"github.com/praxis-engineering/retrofit/internal/logging"
)

// Confirmer answers yes/no questions before mutating steps. The CLI wires
// in an interactive prompt; tests supply canned answers.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// AcceptAll is a Confirmer that answers yes to everything (--yes mode).
var AcceptAll Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })

// Result describes the checkpoint taken before migration.
type Result struct {
	// Tagged is true when the retrofit-start tag was created or moved.
	Tagged bool

	// Initialized is true when a new repository was created for this run.
	Initialized bool

	// Stashed is true when uncommitted changes were stashed away.
	Stashed bool

	// Skipped is true for local-only installs on non-repositories, which
	// proceed without a rollback tag since they make no commits.
	Skipped bool
}

// Ensure verifies the target has a rollback path before any file is
// touched. Commit-mode installs require a repository (offering to create
// one); declining any prompt aborts before mutation.
func Ensure(ctx context.Context, git *Git, opts config.Options, confirm Confirmer) (*Result, error) {
	result := &Result{}

	if !git.IsRepo(opts.Target) {
		if !opts.Commit {
			// A local-only install never commits or tags, so it makes no
			// external commitment that would need a rollback point.
			logging.Debug("no repository, local install proceeds without checkpoint", "dir", opts.Target)
			result.Skipped = true
			return result, nil
		}

		ok, err := confirm.Confirm("No git repository found. Initialize one?")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.NoRepository(opts.Target)
		}
		if err := git.Init(ctx, opts.Target); err != nil {
			return nil, errors.GitError("failed to initialize repository", err)
		}
		result.Initialized = true
	}

	if git.IsDirty(ctx, opts.Target) {
		ok, err := confirm.Confirm("Uncommitted changes detected. Stash and continue?")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.DirtyWorktree(opts.Target)
		}
		if err := git.Stash(ctx, opts.Target); err != nil {
			return nil, errors.GitError("failed to stash changes", err)
		}
		result.Stashed = true
	}

	// A freshly initialized (or empty) repository has no commit to tag.
	// That is fine: there is no prior state to roll back to either.
	if !git.HasCommits(ctx, opts.Target) {
		logging.Debug("no commits to tag, skipping checkpoint tag", "dir", opts.Target)
		return result, nil
	}

	if err := git.TagForce(ctx, opts.Target, config.TagStart); err != nil {
		return nil, errors.GitError("failed to create checkpoint tag", err)
	}
	result.Tagged = true

	logging.Debug("checkpoint established", "tag", config.TagStart, "dir", opts.Target)
	return result, nil
}

// Rollback hard-resets the target to the pre-install tag. This is the
// sole rollback mechanism; it is always an explicit operator action.
func Rollback(ctx context.Context, git *Git, dir string) error {
	if !git.IsRepo(dir) {
		return errors.NoRepository(dir)
	}
	if !git.HasTag(ctx, dir, config.TagStart) {
		return errors.GitError("no "+config.TagStart+" tag to roll back to", nil)
	}
	if err := git.ResetHard(ctx, dir, config.TagStart); err != nil {
		return errors.GitError("rollback failed", err)
	}
	return nil
}

// Complete stages the installed files, commits them, and moves the
// completion tag. Only called in commit mode. A re-run against an
// unchanged tree has nothing to commit; the commit is skipped but the
// tag still moves, so repeated installs stay idempotent. Returns whether
// a commit was made.
func Complete(ctx context.Context, git *Git, dir, message string) (bool, error) {
	if err := git.AddAll(ctx, dir); err != nil {
		return false, errors.GitError("failed to stage installed files", err)
	}

	committed := false
	if git.IsDirty(ctx, dir) {
		if err := git.Commit(ctx, dir, message); err != nil {
			return false, errors.GitError("failed to commit installed files", err)
		}
		committed = true
	} else {
		logging.Debug("nothing to commit, moving completion tag only", "dir", dir)
	}

	if err := git.TagForce(ctx, dir, config.TagComplete); err != nil {
		return committed, errors.GitError("failed to move completion tag", err)
	}
	return committed, nil
}
