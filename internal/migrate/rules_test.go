package migrate

import "testing"

func TestClassifyDoc(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"DESIGN.md", "docs/design"},
		{"ARCHITECTURE_OVERVIEW.md", "docs/design"},
		{"implementation_notes.md", "docs/design"}, // IMPLEMENTATION before NOTES
		{"USER_GUIDE.md", "docs/guides"},
		{"METHODOLOGY.md", "docs/guides"},
		{"ROADMAP_2026.md", "docs/guides"},
		{"PERF_ANALYSIS.md", "docs/analysis"},
		{"EXECUTIVE_SUMMARY.md", "docs/analysis"},
		{"risk-assessment.md", "docs/analysis"},
		{"CHANGELOG.md", "docs/notes"},
		{"TODO.md", "docs/notes"},
		{"meeting-notes.md", "docs/notes"},
		{"CONTRIBUTING.md", "docs"},
		{"random.md", "docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDoc(tt.name); got != tt.want {
				t.Errorf("ClassifyDoc(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

// Rule order matters: a name matching multiple rules must always land in
// the first rule's destination.
func TestClassifyDoc_FirstMatchWins(t *testing.T) {
	// Matches DESIGN (rule 1) and NOTES (rule 4).
	if got := ClassifyDoc("DESIGN_NOTES.md"); got != "docs/design" {
		t.Errorf("ClassifyDoc(DESIGN_NOTES.md) = %q, want docs/design", got)
	}
	// Matches GUIDE (rule 2) and SUMMARY (rule 3).
	if got := ClassifyDoc("GUIDE_SUMMARY.md"); got != "docs/guides" {
		t.Errorf("ClassifyDoc(GUIDE_SUMMARY.md) = %q, want docs/guides", got)
	}
}

func TestClassifyDoc_Deterministic(t *testing.T) {
	names := []string{"DESIGN.md", "TODO.md", "other.md", "GUIDE_SUMMARY.md"}
	for _, n := range names {
		if ClassifyDoc(n) != ClassifyDoc(n) {
			t.Errorf("ClassifyDoc(%q) not deterministic", n)
		}
	}
}

func TestIsLooseDoc(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"DESIGN.md", true},
		{"notes.markdown", true},
		{"README.md", false}, // protected
		{"AGENTS.md", false}, // protected
		{"main.go", false},
		{"Makefile", false},
		{"readme.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLooseDoc(tt.name); got != tt.want {
				t.Errorf("IsLooseDoc(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
