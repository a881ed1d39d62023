package migrate

import "strings"

// Rule maps filename keywords to a destination directory. Rules are
// ordered: the first match wins, so the table must never be reordered
// without intending a behavior change.
type Rule struct {
	Keywords []string
	Dest     string
}

// rules is the classification table for loose documentation files.
var rules = []Rule{
	{Keywords: []string{"DESIGN", "ARCHITECTURE", "IMPLEMENTATION"}, Dest: "docs/design"},
	{Keywords: []string{"GUIDE", "METHODOLOGY", "ROADMAP"}, Dest: "docs/guides"},
	{Keywords: []string{"ANALYSIS", "SUMMARY", "ASSESSMENT"}, Dest: "docs/analysis"},
	{Keywords: []string{"CHANGELOG", "TODO", "NOTES"}, Dest: "docs/notes"},
}

// defaultDest receives files no rule matches.
const defaultDest = "docs"

// protectedFiles stay at the repository root regardless of keywords.
var protectedFiles = map[string]bool{
	"README.md": true,
	"AGENTS.md": true,
}

// docExtensions are the filename suffixes treated as documentation.
var docExtensions = []string{".md", ".markdown"}

// IsLooseDoc reports whether a top-level filename is a relocatable
// documentation file.
func IsLooseDoc(name string) bool {
	if protectedFiles[name] {
		return false
	}
	lower := strings.ToLower(name)
	for _, ext := range docExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ClassifyDoc returns the destination directory (relative to the project
// root) for a documentation filename. Pure function of the name.
func ClassifyDoc(name string) string {
	upper := strings.ToUpper(name)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(upper, kw) {
				return r.Dest
			}
		}
	}
	return defaultDest
}
