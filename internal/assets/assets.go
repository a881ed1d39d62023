package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates
var templatesFS embed.FS

// root is the prefix under which all assets are embedded.
const root = "templates"

// Read returns the contents of an embedded asset by path relative to the
// template root, e.g. "skills/debugging/skill.md".
func Read(rel string) ([]byte, error) {
	return templatesFS.ReadFile(path.Join(root, rel))
}

// List returns the relative paths of every embedded file under dir
// (or all assets when dir is empty), sorted.
func List(dir string) ([]string, error) {
	start := root
	if dir != "" {
		start = path.Join(root, dir)
	}

	var files []string
	err := fs.WalkDir(templatesFS, start, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, strings.TrimPrefix(p, root+"/"))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// SkillMeta is the YAML frontmatter of a skill document.
type SkillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseFrontmatter extracts the YAML block from a document that starts
// with `---` fences and returns the metadata and body.
func ParseFrontmatter(content []byte) (SkillMeta, []byte, error) {
	var meta SkillMeta
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return meta, nil, fmt.Errorf("missing frontmatter")
	}
	rest := content[4:]
	parts := bytes.SplitN(rest, []byte("\n---\n"), 2)
	if len(parts) < 2 {
		return meta, nil, fmt.Errorf("malformed frontmatter")
	}
	if err := yaml.Unmarshal(parts[0], &meta); err != nil {
		return meta, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, parts[1], nil
}

// Skills returns the metadata of every skill in the embedded library,
// sorted by name.
func Skills() ([]SkillMeta, error) {
	files, err := List("skills")
	if err != nil {
		return nil, err
	}

	var skills []SkillMeta
	for _, f := range files {
		if path.Base(f) != "skill.md" {
			continue
		}
		data, err := Read(f)
		if err != nil {
			return nil, err
		}
		meta, _, err := ParseFrontmatter(data)
		if err != nil {
			return nil, fmt.Errorf("skill %s: %w", f, err)
		}
		skills = append(skills, meta)
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// planData feeds the PROJECT_PLAN template. Constraint text differs by
// mode; everything else is shared.
type planData struct {
	Mode       string
	Constraint string
}

const (
	lightConstraint = "_This is a production project: changes must preserve existing behavior, " +
		"deployment configuration, and release cadence. Prefer additive, reversible steps._"

	fullConstraint = "_This project is in active development: optimize for iteration speed, " +
		"but keep the quality gate green and the task list current._"
)

var planTemplate = template.Must(
	template.New("plan").Parse(mustRead("PROJECT_PLAN.md.tmpl")),
)

func mustRead(rel string) string {
	data, err := Read(rel)
	if err != nil {
		// Programming error: the template is embedded and covered by tests.
		panic("assets: missing embedded template " + rel + ": " + err.Error())
	}
	return string(data)
}

// RenderPlan renders the planning document for the given mode
// ("light" or "full").
func RenderPlan(mode string) ([]byte, error) {
	data := planData{Mode: mode, Constraint: fullConstraint}
	if mode == "light" {
		data.Constraint = lightConstraint
	}

	var buf bytes.Buffer
	if err := planTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render plan: %w", err)
	}
	return buf.Bytes(), nil
}
