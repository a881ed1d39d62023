// Package classify converts project signals into an installation mode.
package classify

import (
	"fmt"
	"strings"

	"github.com/praxis-engineering/retrofit/internal/signals"
)

// Mode is the installation profile chosen for a target project.
type Mode string

const (
	// ModeLight keeps the footprint minimal for production-looking projects.
	ModeLight Mode = "light"

	// ModeFull installs the complete scaffolding for active development.
	ModeFull Mode = "full"
)

// lowActivityThreshold is the commit count below which a project counts
// as low-activity (one of the production indicators).
const lowActivityThreshold = 5

// productionThreshold is the score at or above which a project is
// classified as production (LIGHT install).
const productionThreshold = 2

// Score returns the production score: the count of true signals among
// low recent activity, deployment config, CI config, and production env.
func Score(s signals.ProjectSignals) int {
	score := 0
	if s.RecentCommits < lowActivityThreshold {
		score++
	}
	if s.HasDeployment {
		score++
	}
	if s.HasCI {
		score++
	}
	if s.HasProductionEnv {
		score++
	}
	return score
}

// Classify derives the installation mode from the detected signals.
// Pure function: same signals, same mode.
func Classify(s signals.ProjectSignals) Mode {
	if Score(s) >= productionThreshold {
		return ModeLight
	}
	return ModeFull
}

// ParseMode parses an explicit operator override. The override replaces
// the computed mode unconditionally.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "full":
		return ModeFull, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be light or full", s)
	}
}
