// Package assets embeds the toolkit's template library.
//
// The library is compiled into the binary via go:embed so a single
// executable can install the full toolkit without network access or
// companion files. Contents:
//
//	standards.md                  engineering standards (refreshed on install)
//	TASKS.md                      task list seed (created once)
//	PROJECT_PLAN.md.tmpl          planning document template
//	skills/<name>/skill.md        reference skill library
//	commands/<name>.md            command templates
//	quality-gate/check_quality.sh per-language lint/test dispatch
//	mcp-servers/*.md              MCP server contract descriptors
//	tests/test_basic.py           test scaffold placeholder
//
// Skill and command documents carry YAML frontmatter (name, description)
// which ParseFrontmatter extracts for listings and validation counts.
package assets
