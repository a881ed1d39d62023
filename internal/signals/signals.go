package signals

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/praxis-engineering/retrofit/internal/logging"
	"github.com/praxis-engineering/retrofit/internal/system"
)

// ProjectSignals records the facts about a target project that feed the
// mode classifier. Computed once per invocation and immutable afterwards.
type ProjectSignals struct {
	RecentCommits    int
	HasDeployment    bool
	HasCI            bool
	HasProductionEnv bool
}

// deploymentMarkers are file or directory names whose presence indicates
// the project ships somewhere.
var deploymentMarkers = []string{
	"Dockerfile",
	"docker-compose.yml",
	"docker-compose.yaml",
	"k8s",
	"deploy",
	"helm",
}

// ciMarkers indicate continuous-integration configuration.
var ciMarkers = []string{
	".github/workflows",
	".gitlab-ci.yml",
	".circleci",
	"Jenkinsfile",
	".buildkite",
}

// productionEnvMarkers indicate production environment configuration.
var productionEnvMarkers = []string{
	".env.production",
	".env.prod",
}

// productionConfigDir is scanned for production.* files of any extension.
const productionConfigDir = "config"

// Detector inspects a target project without mutating anything.
type Detector struct {
	FS   system.FileSystem
	Exec system.CommandExecutor
}

// NewDetector returns a detector using the default OS implementations.
func NewDetector() *Detector {
	return &Detector{
		FS:   system.DefaultFS(),
		Exec: system.DefaultExecutor(),
	}
}

// Detect computes the project signals for dir. Detection is best-effort:
// a failing git query degrades to a zero commit count, never to an error.
func (d *Detector) Detect(ctx context.Context, dir string) ProjectSignals {
	s := ProjectSignals{
		RecentCommits:    d.recentCommits(ctx, dir),
		HasDeployment:    d.anyExists(dir, deploymentMarkers),
		HasCI:            d.anyExists(dir, ciMarkers),
		HasProductionEnv: d.anyExists(dir, productionEnvMarkers) || d.hasProductionConfig(dir),
	}

	logging.Debug("detected project signals",
		"dir", dir,
		"recentCommits", s.RecentCommits,
		"deployment", s.HasDeployment,
		"ci", s.HasCI,
		"productionEnv", s.HasProductionEnv)

	return s
}

// recentCommits counts commits in the last 30 days. Any failure (no repo,
// no HEAD, git missing) is treated as zero.
func (d *Detector) recentCommits(ctx context.Context, dir string) int {
	out, err := d.Exec.Execute(ctx, "git", "-C", dir, "rev-list", "--count", "--since=30.days", "HEAD")
	if err != nil {
		logging.Debug("commit count unavailable", "dir", dir, "error", err)
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		logging.Debug("unparseable commit count", "output", string(out))
		return 0
	}
	return n
}

// hasProductionConfig reports whether config/ holds anything named
// production*, whatever the extension.
func (d *Detector) hasProductionConfig(dir string) bool {
	entries, err := d.FS.ReadDir(filepath.Join(dir, productionConfigDir))
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "production") {
			return true
		}
	}
	return false
}

func (d *Detector) anyExists(dir string, markers []string) bool {
	for _, m := range markers {
		if d.FS.Exists(filepath.Join(dir, filepath.FromSlash(m))) {
			return true
		}
	}
	return false
}
