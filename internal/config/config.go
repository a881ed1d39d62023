package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/praxis-engineering/retrofit/internal/system"
)

const (
	// ConfigRoot is the directory retrofit manages inside a target project.
	ConfigRoot = ".retrofit"

	// StandardsFile is the always-refreshed engineering standards document.
	StandardsFile = "standards.md"

	// TasksFile is the create-once task list.
	TasksFile = "TASKS.md"

	// PlanFile is the create-once planning document under docs/notes.
	PlanFile = "PROJECT_PLAN.md"

	// RecordFile records the first installation (mode, version, time).
	RecordFile = "config.toml"

	// TagStart marks the pre-install state for manual rollback.
	TagStart = "retrofit-start"

	// TagComplete marks the post-install commit in commit mode.
	TagComplete = "retrofit-complete"

	// Version is the toolkit version written into the install record.
	Version = "1.2.0"
)

// Options is the explicit run configuration threaded through every stage.
// Nothing in retrofit reads ambient process state beyond these fields.
type Options struct {
	Target    string // target project directory (absolute)
	Mode      string // "light" or "full", resolved before migration
	Commit    bool   // commit installed files instead of ignoring them
	AssumeYes bool   // accept every confirmation without prompting
}

// Paths resolves the fixed locations retrofit manages under a target.
type Paths struct {
	Target string
}

// NewPaths returns path helpers rooted at the target directory.
func NewPaths(target string) *Paths {
	return &Paths{Target: target}
}

// ConfigDir returns the managed configuration root.
func (p *Paths) ConfigDir() string {
	return filepath.Join(p.Target, ConfigRoot)
}

// Standards returns the path of the standards document.
func (p *Paths) Standards() string {
	return filepath.Join(p.ConfigDir(), StandardsFile)
}

// Tasks returns the path of the task list.
func (p *Paths) Tasks() string {
	return filepath.Join(p.ConfigDir(), TasksFile)
}

// SkillsDir returns the skill library directory.
func (p *Paths) SkillsDir() string {
	return filepath.Join(p.ConfigDir(), "skills")
}

// CommandsDir returns the command template directory.
func (p *Paths) CommandsDir() string {
	return filepath.Join(p.ConfigDir(), "commands")
}

// QualityGateDir returns the quality-gate directory (FULL mode).
func (p *Paths) QualityGateDir() string {
	return filepath.Join(p.ConfigDir(), "quality-gate")
}

// MCPServersDir returns the MCP server descriptor directory (FULL mode).
func (p *Paths) MCPServersDir() string {
	return filepath.Join(p.ConfigDir(), "mcp-servers")
}

// DocsDir returns the docs root.
func (p *Paths) DocsDir() string {
	return filepath.Join(p.Target, "docs")
}

// Plan returns the path of the planning document.
func (p *Paths) Plan() string {
	return filepath.Join(p.DocsDir(), "notes", PlanFile)
}

// Record returns the path of the install record.
func (p *Paths) Record() string {
	return filepath.Join(p.ConfigDir(), RecordFile)
}

// EventLog returns the path of the JSONL run event log.
func (p *Paths) EventLog() string {
	return filepath.Join(p.ConfigDir(), "events.jsonl")
}

// InstallRecord is persisted as config.toml on first install. It is
// create-once: later runs leave the original record in place so the first
// install's mode and version stay visible.
type InstallRecord struct {
	Version     string    `toml:"version"`
	Mode        string    `toml:"mode"`
	InstalledAt time.Time `toml:"installed_at"`
}

// LoadRecord reads the install record from a prior run, if present.
func LoadRecord(fs system.FileSystem, path string) (*InstallRecord, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec InstallRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse install record: %w", err)
	}
	return &rec, nil
}

// EncodeRecord renders an install record as TOML.
func EncodeRecord(rec *InstallRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, fmt.Errorf("failed to encode install record: %w", err)
	}
	return buf.Bytes(), nil
}
