// Package migrate is the file migration engine.
//
// A run has four steps, each individually idempotent so an interrupted
// install is recovered by re-running:
//
//  1. Create the directory skeleton from the manifest.
//  2. Relocate loose top-level documentation files into docs/ by ordered
//     keyword rules, via git mv when history is available. A file already
//     present at the destination is authoritative and never clobbered.
//  3. Install the embedded template library per manifest entry policy:
//     Refresh entries are rewritten every run, CreateOnce entries only
//     when absent.
//  4. Commit mode: stage, commit, and move the completion tag. Local
//     mode: append a managed ignore block to .gitignore instead.
//
// Failures abort the remaining steps but never roll back completed ones.
package migrate
