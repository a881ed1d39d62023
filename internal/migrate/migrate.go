package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/praxis-engineering/retrofit/internal/assets"
	"github.com/praxis-engineering/retrofit/internal/checkpoint"
	"github.com/praxis-engineering/retrofit/internal/classify"
	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/errors"
	"github.com/praxis-engineering/retrofit/internal/logging"
	"github.com/praxis-engineering/retrofit/internal/manifest"
	"github.com/praxis-engineering/retrofit/internal/system"
)

// ignoreMarker heads the managed block appended to .gitignore. Its
// presence makes the append idempotent.
const ignoreMarker = "# retrofit (managed)"

// localIgnoreBlock excludes the whole config root in local mode, so
// installed files are never staged.
const localIgnoreBlock = "\n" + ignoreMarker + "\n" + config.ConfigRoot + "/\n"

// commitIgnoreBlock excludes only the audit log in commit mode. Events
// written after the install commit must not dirty the worktree, or every
// re-run would trip the uncommitted-changes gate.
const commitIgnoreBlock = "\n" + ignoreMarker + "\n" + config.ConfigRoot + "/events.jsonl\n"

// Engine performs the file migration. All access goes through the
// injected filesystem and git helper so the engine is testable headless.
type Engine struct {
	FS  system.FileSystem
	Git *checkpoint.Git
}

// NewEngine returns an engine using the default OS implementations.
func NewEngine() *Engine {
	return &Engine{
		FS:  system.DefaultFS(),
		Git: checkpoint.NewGit(),
	}
}

// Result summarizes what a migration run did.
type Result struct {
	CreatedDirs []string
	Relocated   []string
	Installed   []string
	Refreshed   []string
	Skipped     []string
	Committed   bool
	Ignored     bool
}

// Run executes the migration for the resolved options. Every step is
// individually idempotent: a failed or interrupted run is recovered by
// re-running, not by cleanup.
func (e *Engine) Run(ctx context.Context, opts config.Options) (*Result, error) {
	mode, err := classify.ParseMode(opts.Mode)
	if err != nil {
		return nil, errors.ConfigError("invalid mode", err)
	}

	result := &Result{}
	entries := manifest.Entries(mode)

	if err := e.createSkeleton(entries, opts.Target, result); err != nil {
		return result, errors.MigrationFailed("skeleton", err)
	}

	if err := e.relocateDocs(ctx, opts.Target, result); err != nil {
		return result, errors.MigrationFailed("relocate", err)
	}

	if err := e.installLibrary(entries, mode, opts.Target, result); err != nil {
		return result, errors.MigrationFailed("install", err)
	}

	if err := e.finalize(ctx, opts, result); err != nil {
		return result, errors.MigrationFailed("finalize", err)
	}

	return result, nil
}

// createSkeleton ensures every manifest directory exists, including the
// parents of file entries.
func (e *Engine) createSkeleton(entries []manifest.Entry, target string, result *Result) error {
	for _, entry := range entries {
		dir := filepath.Join(target, filepath.FromSlash(entry.Path))
		if entry.Kind != manifest.Dir {
			dir = filepath.Dir(dir)
		}
		if e.FS.IsDir(dir) {
			continue
		}
		if err := e.FS.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}
	return nil
}

// relocateDocs classifies loose top-level documentation files and moves
// them into the docs skeleton, preserving git history where possible.
func (e *Engine) relocateDocs(ctx context.Context, target string, result *Result) error {
	dirEntries, err := e.FS.ReadDir(target)
	if err != nil {
		return fmt.Errorf("read target: %w", err)
	}

	inRepo := e.Git.IsRepo(target)

	for _, de := range dirEntries {
		if de.IsDir() || !IsLooseDoc(de.Name()) {
			continue
		}

		destDir := ClassifyDoc(de.Name())
		dest, err := securejoin.SecureJoin(target, filepath.Join(filepath.FromSlash(destDir), de.Name()))
		if err != nil {
			return fmt.Errorf("resolve destination for %s: %w", de.Name(), err)
		}

		// An existing file at the destination is authoritative.
		if e.FS.Exists(dest) {
			logging.Debug("relocation target exists, skipping", "file", de.Name(), "dest", dest)
			result.Skipped = append(result.Skipped, de.Name())
			continue
		}

		src := filepath.Join(target, de.Name())
		moved := false
		if inRepo {
			// git mv keeps history; falls through for untracked files.
			if err := e.Git.Move(ctx, target, de.Name(), filepath.Join(filepath.FromSlash(destDir), de.Name())); err == nil {
				moved = true
			} else {
				logging.Debug("git mv failed, falling back to rename", "file", de.Name(), "error", err)
			}
		}
		if !moved {
			if err := e.FS.Rename(src, dest); err != nil {
				return fmt.Errorf("move %s: %w", de.Name(), err)
			}
		}

		logging.Debug("relocated document", "file", de.Name(), "dest", destDir)
		result.Relocated = append(result.Relocated, de.Name())
	}

	return nil
}

// installLibrary writes every file-producing manifest entry, honoring
// its collision policy.
func (e *Engine) installLibrary(entries []manifest.Entry, mode classify.Mode, target string, result *Result) error {
	for _, entry := range entries {
		switch entry.Kind {
		case manifest.Dir:
			// Handled by createSkeleton.

		case manifest.File:
			data, err := assets.Read(entry.Source)
			if err != nil {
				return fmt.Errorf("asset %s: %w", entry.Source, err)
			}
			if err := e.installFile(entry, entry.Path, data, target, result); err != nil {
				return err
			}

		case manifest.Tree:
			files, err := assets.List(entry.Source)
			if err != nil {
				return fmt.Errorf("asset tree %s: %w", entry.Source, err)
			}
			for _, f := range files {
				data, err := assets.Read(f)
				if err != nil {
					return fmt.Errorf("asset %s: %w", f, err)
				}
				rel := entry.Path + strings.TrimPrefix(f, entry.Source)
				if err := e.installFile(entry, rel, data, target, result); err != nil {
					return err
				}
			}

		case manifest.Rendered:
			data, err := entry.Render(mode)
			if err != nil {
				return fmt.Errorf("render %s: %w", entry.Path, err)
			}
			if err := e.installFile(entry, entry.Path, data, target, result); err != nil {
				return err
			}
		}
	}
	return nil
}

// installFile writes one file according to the entry's policy.
func (e *Engine) installFile(entry manifest.Entry, rel string, data []byte, target string, result *Result) error {
	dest := filepath.Join(target, filepath.FromSlash(rel))

	exists := e.FS.Exists(dest)
	if exists && entry.Policy == manifest.CreateOnce {
		result.Skipped = append(result.Skipped, rel)
		return nil
	}

	if dir := filepath.Dir(dest); !e.FS.IsDir(dir) {
		if err := e.FS.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	var perm fs.FileMode = 0644
	if entry.Exec {
		perm = 0755
	}
	if err := e.FS.WriteFile(dest, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}

	if exists {
		result.Refreshed = append(result.Refreshed, rel)
	} else {
		result.Installed = append(result.Installed, rel)
	}
	return nil
}

// finalize either commits the installed files (commit mode) or excludes
// them from version control (local mode).
func (e *Engine) finalize(ctx context.Context, opts config.Options, result *Result) error {
	if opts.Commit {
		// The ignore rule must land before staging so the audit log is
		// never tracked.
		if _, err := e.ensureIgnoreBlock(opts.Target, commitIgnoreBlock); err != nil {
			return err
		}
		message := fmt.Sprintf("chore: install retrofit toolkit (%s mode, v%s)", opts.Mode, config.Version)
		committed, err := checkpoint.Complete(ctx, e.Git, opts.Target, message)
		if err != nil {
			return err
		}
		result.Committed = committed
		return nil
	}

	appended, err := e.ensureIgnoreBlock(opts.Target, localIgnoreBlock)
	if err != nil {
		return err
	}
	result.Ignored = appended
	return nil
}

// ensureIgnoreBlock appends the managed block to .gitignore once.
func (e *Engine) ensureIgnoreBlock(target, block string) (bool, error) {
	ignorePath := filepath.Join(target, ".gitignore")
	if data, err := e.FS.ReadFile(ignorePath); err == nil && strings.Contains(string(data), ignoreMarker) {
		return false, nil
	}
	if err := e.FS.AppendFile(ignorePath, []byte(block), 0644); err != nil {
		return false, fmt.Errorf("update .gitignore: %w", err)
	}
	return true, nil
}
