package checkpoint

import (
	"context"
	"fmt"
	"strings"

	"github.com/praxis-engineering/retrofit/internal/system"
)

// Git wraps the git operations retrofit needs, addressed at a target
// directory via `git -C`.
type Git struct {
	Exec system.CommandExecutor
	FS   system.FileSystem
}

// NewGit returns a Git helper using the default OS executor.
func NewGit() *Git {
	return &Git{
		Exec: system.DefaultExecutor(),
		FS:   system.DefaultFS(),
	}
}

// IsRepo reports whether dir is inside a git repository.
// .git can be a directory (normal repo) or a file (worktree).
func (g *Git) IsRepo(dir string) bool {
	info, err := g.FS.Stat(dir + "/.git")
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// Init initializes a new repository at dir.
func (g *Git) Init(ctx context.Context, dir string) error {
	if out, err := g.Exec.Execute(ctx, "git", "-C", dir, "init"); err != nil {
		return fmt.Errorf("git init failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// IsDirty reports whether dir has uncommitted changes to tracked files.
// Untracked files are not counted: the installer only ever creates new
// files, so untracked content is never at risk from a run.
func (g *Git) IsDirty(ctx context.Context, dir string) bool {
	out, err := g.Exec.Execute(ctx, "git", "-C", dir, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// HasCommits reports whether the repository has any commit to tag.
func (g *Git) HasCommits(ctx context.Context, dir string) bool {
	_, err := g.Exec.Execute(ctx, "git", "-C", dir, "rev-parse", "--verify", "HEAD")
	return err == nil
}

// Stash saves uncommitted changes, including untracked files.
func (g *Git) Stash(ctx context.Context, dir string) error {
	out, err := g.Exec.Execute(ctx, "git", "-C", dir, "stash", "push", "--include-untracked", "-m", "retrofit pre-install stash")
	if err != nil {
		return fmt.Errorf("git stash failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// TagForce creates or moves a tag at HEAD. Force-move semantics keep
// repeated runs idempotent.
func (g *Git) TagForce(ctx context.Context, dir, name string) error {
	out, err := g.Exec.Execute(ctx, "git", "-C", dir, "tag", "-f", name)
	if err != nil {
		return fmt.Errorf("git tag failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// HasTag reports whether a tag exists.
func (g *Git) HasTag(ctx context.Context, dir, name string) bool {
	_, err := g.Exec.Execute(ctx, "git", "-C", dir, "rev-parse", "--verify", "refs/tags/"+name)
	return err == nil
}

// Move relocates a tracked file with `git mv`, preserving history.
func (g *Git) Move(ctx context.Context, dir, src, dst string) error {
	out, err := g.Exec.Execute(ctx, "git", "-C", dir, "mv", src, dst)
	if err != nil {
		return fmt.Errorf("git mv failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// AddAll stages every change, addition, and deletion.
func (g *Git) AddAll(ctx context.Context, dir string) error {
	if out, err := g.Exec.Execute(ctx, "git", "-C", dir, "add", "-A"); err != nil {
		return fmt.Errorf("git add failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Commit records the staged changes with the given message.
func (g *Git) Commit(ctx context.Context, dir, message string) error {
	if out, err := g.Exec.Execute(ctx, "git", "-C", dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// ResetHard resets the worktree to the named ref.
func (g *Git) ResetHard(ctx context.Context, dir, ref string) error {
	out, err := g.Exec.Execute(ctx, "git", "-C", dir, "reset", "--hard", ref)
	if err != nil {
		return fmt.Errorf("git reset failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}
