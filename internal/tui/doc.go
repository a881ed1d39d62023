// Package tui provides the interactive prompts for retrofit.
//
// Two prompts exist: a yes/no confirmation (repository init, stash,
// rollback) and a mode selector that presents the computed install mode
// with an override path. Both are bubbletea models; the Prompter type
// wraps them behind plain blocking methods so the install pipeline
// stays free of TUI concerns. Headless runs (--yes) bypass this package
// entirely with canned confirmers.
package tui
