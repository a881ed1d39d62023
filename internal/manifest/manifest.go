// Package manifest declares what an installation produces.
//
// Every file or directory retrofit guarantees to install is listed here
// with an explicit collision policy. The migration engine installs from
// this table; the validator checks against it. Nothing else decides what
// gets written where.
package manifest

import (
	"time"

	"github.com/praxis-engineering/retrofit/internal/assets"
	"github.com/praxis-engineering/retrofit/internal/classify"
	"github.com/praxis-engineering/retrofit/internal/config"
)

// Policy decides what happens when a file already exists at the target.
type Policy string

const (
	// Refresh overwrites the target on every run, so upgrades propagate.
	Refresh Policy = "refresh"

	// CreateOnce never overwrites: an existing file is authoritative.
	CreateOnce Policy = "create-once"
)

// Kind distinguishes the shapes of manifest entries.
type Kind int

const (
	// Dir is a bare directory (create-if-missing).
	Dir Kind = iota

	// File is a single embedded asset copied to a fixed path.
	File

	// Tree expands a directory of embedded assets under a fixed root.
	Tree

	// Rendered is a file produced by a template at install time.
	Rendered
)

// Entry is one item the installer guarantees to produce.
type Entry struct {
	// Path is the target location, relative to the project root.
	Path string

	// Source is the embedded asset path (File) or directory (Tree).
	Source string

	Kind   Kind
	Policy Policy

	// Required entries missing after install are validation errors;
	// optional ones are warnings.
	Required bool

	// FullOnly entries are installed and validated only in FULL mode.
	FullOnly bool

	// Exec marks files installed with execute permission.
	Exec bool

	// Render produces the content of Rendered entries.
	Render func(mode classify.Mode) ([]byte, error)
}

// DocsSkeleton is the fixed documentation directory skeleton.
var DocsSkeleton = []string{
	"docs/design",
	"docs/guides",
	"docs/analysis",
	"docs/references",
	"docs/notes",
}

// Entries returns the installation manifest for a mode, in install order.
func Entries(mode classify.Mode) []Entry {
	entries := make([]Entry, 0, len(DocsSkeleton)+10)

	for _, d := range DocsSkeleton {
		entries = append(entries, Entry{Path: d, Kind: Dir, Required: true})
	}

	entries = append(entries,
		Entry{
			Path:     config.ConfigRoot + "/" + config.StandardsFile,
			Source:   config.StandardsFile,
			Kind:     File,
			Policy:   Refresh,
			Required: true,
		},
		Entry{
			Path:     config.ConfigRoot + "/" + config.TasksFile,
			Source:   config.TasksFile,
			Kind:     File,
			Policy:   CreateOnce,
			Required: true,
		},
		Entry{
			Path:     config.ConfigRoot + "/skills",
			Source:   "skills",
			Kind:     Tree,
			Policy:   Refresh,
			Required: true,
		},
		Entry{
			Path:     config.ConfigRoot + "/commands",
			Source:   "commands",
			Kind:     Tree,
			Policy:   Refresh,
			Required: true,
		},
		Entry{
			Path:     "docs/notes/" + config.PlanFile,
			Kind:     Rendered,
			Policy:   CreateOnce,
			Required: true,
			Render: func(m classify.Mode) ([]byte, error) {
				return assets.RenderPlan(string(m))
			},
		},
		Entry{
			Path:   config.ConfigRoot + "/" + config.RecordFile,
			Kind:   Rendered,
			Policy: CreateOnce,
			Render: func(m classify.Mode) ([]byte, error) {
				return config.EncodeRecord(&config.InstallRecord{
					Version:     config.Version,
					Mode:        string(m),
					InstalledAt: time.Now().UTC(),
				})
			},
		},
		Entry{
			Path:     "tests",
			Kind:     Dir,
			FullOnly: true,
		},
		Entry{
			Path:     config.ConfigRoot + "/quality-gate/check_quality.sh",
			Source:   "quality-gate/check_quality.sh",
			Kind:     File,
			Policy:   CreateOnce,
			Required: true,
			FullOnly: true,
			Exec:     true,
		},
		Entry{
			Path:     config.ConfigRoot + "/mcp-servers",
			Source:   "mcp-servers",
			Kind:     Tree,
			Policy:   Refresh,
			FullOnly: true,
		},
		Entry{
			Path:     "tests/test_basic.py",
			Source:   "tests/test_basic.py",
			Kind:     File,
			Policy:   CreateOnce,
			FullOnly: true,
		},
	)

	if mode == classify.ModeLight {
		filtered := entries[:0]
		for _, e := range entries {
			if !e.FullOnly {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return entries
}
