// Package config holds the explicit run configuration and managed paths.
//
// Every stage of the installer receives an Options value instead of reading
// flags, environment variables, or the working directory on its own. Paths
// centralizes the fixed layout retrofit produces under a target project:
//
//	docs/{design,guides,analysis,references,notes}/
//	docs/notes/PROJECT_PLAN.md
//	.retrofit/standards.md
//	.retrofit/TASKS.md
//	.retrofit/skills/
//	.retrofit/commands/
//	.retrofit/quality-gate/   (FULL mode)
//	.retrofit/mcp-servers/    (FULL mode)
//	tests/test_basic.py       (FULL mode)
//
// The install record (.retrofit/config.toml) is written once on first
// install and records the chosen mode and toolkit version.
package config
