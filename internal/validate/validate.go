package validate

import (
	"fmt"
	"path/filepath"

	"github.com/praxis-engineering/retrofit/internal/classify"
	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/manifest"
	"github.com/praxis-engineering/retrofit/internal/system"
)

// Report is the outcome of a post-install scan. Counts are informational
// only: they are never compared against an expected number, so a richer
// template set can not produce false failures.
type Report struct {
	Errors   []string
	Warnings []string

	SkillCount     int
	CommandCount   int
	MCPServerCount int
}

// Ok reports full success: no errors and no warnings.
func (r *Report) Ok() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Partial reports success with warnings.
func (r *Report) Partial() bool {
	return len(r.Errors) == 0 && len(r.Warnings) > 0
}

// Validator re-scans a target after installation.
type Validator struct {
	FS system.FileSystem
}

// New returns a validator using the default OS filesystem.
func New() *Validator {
	return &Validator{FS: system.DefaultFS()}
}

// Check verifies every manifest entry exists for the given mode and
// counts installed sub-items. It never mutates the target.
func (v *Validator) Check(target string, mode classify.Mode) *Report {
	report := &Report{}

	for _, entry := range manifest.Entries(mode) {
		path := filepath.Join(target, filepath.FromSlash(entry.Path))

		ok := false
		switch entry.Kind {
		case manifest.Dir:
			ok = v.FS.IsDir(path)
		case manifest.Tree:
			ok = v.FS.IsDir(path) && v.hasFiles(path)
		default:
			ok = v.FS.Exists(path)
		}
		if ok {
			continue
		}

		msg := fmt.Sprintf("missing: %s", entry.Path)
		if entry.Required {
			report.Errors = append(report.Errors, msg)
		} else {
			report.Warnings = append(report.Warnings, msg)
		}
	}

	paths := config.NewPaths(target)
	report.SkillCount = v.countSkills(paths.SkillsDir())
	report.CommandCount = v.countFiles(paths.CommandsDir(), ".md")
	if mode == classify.ModeFull {
		report.MCPServerCount = v.countFiles(paths.MCPServersDir(), "")
	}

	return report
}

// hasFiles reports whether a directory tree contains at least one file.
func (v *Validator) hasFiles(dir string) bool {
	entries, err := v.FS.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() {
			return true
		}
		if v.hasFiles(filepath.Join(dir, e.Name())) {
			return true
		}
	}
	return false
}

// countSkills counts skill directories that contain a skill.md.
func (v *Validator) countSkills(dir string) int {
	entries, err := v.FS.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if v.FS.Exists(filepath.Join(dir, e.Name(), "skill.md")) {
			count++
		}
	}
	return count
}

// countFiles counts direct children of dir, optionally filtered by suffix.
func (v *Validator) countFiles(dir, suffix string) int {
	entries, err := v.FS.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if suffix == "" || filepath.Ext(e.Name()) == suffix {
			count++
		}
	}
	return count
}
