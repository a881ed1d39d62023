package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/praxis-engineering/retrofit/internal/audit"
	"github.com/praxis-engineering/retrofit/internal/checkpoint"
	"github.com/praxis-engineering/retrofit/internal/classify"
	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/errors"
	"github.com/praxis-engineering/retrofit/internal/logging"
	"github.com/praxis-engineering/retrofit/internal/migrate"
	"github.com/praxis-engineering/retrofit/internal/signals"
	"github.com/praxis-engineering/retrofit/internal/system"
	"github.com/praxis-engineering/retrofit/internal/tui"
	"github.com/praxis-engineering/retrofit/internal/validate"
)

var (
	verbose    bool
	jsonOutput bool
	targetDir  string

	installCommit bool
	installMode   string
	assumeYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "retrofit",
	Short: "Install a development toolkit into an existing project",
	Long: `retrofit fits a documentation and workflow toolkit onto an existing
codebase without disturbing it.

A run detects how active and production-like the project is, picks a
LIGHT or FULL install accordingly, tags the pre-install state for
rollback, tidies loose documentation into docs/, and installs the
toolkit under ` + config.ConfigRoot + `/. Every step is idempotent;
re-running refreshes managed files and leaves your own alone.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE:         runInstall,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&targetDir, "target", "C", ".", "Target project directory")

	rootCmd.Flags().BoolVar(&installCommit, "commit", false, "Commit installed files and tag the result")
	rootCmd.Flags().StringVar(&installMode, "mode", "", "Install mode (light or full); overrides detection")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to all prompts")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	target, err := resolveTarget()
	if err != nil {
		return err
	}

	logging.Debug("starting install", "target", target, "commit", installCommit)

	detector := signals.NewDetector()
	sig := detector.Detect(ctx, target)
	score := classify.Score(sig)
	computed := classify.Classify(sig)

	mode, err := resolveMode(computed, score)
	if err != nil {
		return err
	}

	opts := config.Options{
		Target:    target,
		Mode:      string(mode),
		Commit:    installCommit,
		AssumeYes: assumeYes,
	}

	confirm := confirmer()
	cpResult, err := checkpoint.Ensure(ctx, checkpoint.NewGit(), opts, confirm)
	if err != nil {
		return err
	}
	reportCheckpoint(cpResult)

	// The config root must exist before the first audit event can land.
	fs := system.DefaultFS()
	paths := config.NewPaths(target)
	if err := fs.MkdirAll(paths.ConfigDir(), 0755); err != nil {
		return errors.ConfigError("failed to create config root", err)
	}

	auditor := audit.NewLogger(fs, target)
	auditor.LogEvent(audit.EventDetect, string(mode),
		fmt.Sprintf("score=%d commits=%d", score, sig.RecentCommits))
	auditor.LogEvent(audit.EventCheckpoint, string(mode), checkpointDetails(cpResult))

	logInfo("Installing %s toolkit into %s...", mode, target)

	result, err := migrate.NewEngine().Run(ctx, opts)
	if err != nil {
		auditor.LogEvent(audit.EventError, string(mode), err.Error())
		logWarning("Migration is idempotent; fix the problem and re-run, or reset with: %s",
			shellquote.Join("retrofit", "rollback", "--target", target))
		return err
	}
	auditor.LogEvent(audit.EventMigrate, string(mode),
		fmt.Sprintf("installed=%d refreshed=%d relocated=%d skipped=%d",
			len(result.Installed), len(result.Refreshed), len(result.Relocated), len(result.Skipped)))

	reportMigration(result)

	report := validate.New().Check(target, mode)
	auditor.LogEvent(audit.EventValidate, string(mode),
		fmt.Sprintf("errors=%d warnings=%d", len(report.Errors), len(report.Warnings)))

	return reportValidation(report, mode)
}

// resolveMode turns detection output and flags into the mode to install.
// An explicit --mode wins; --yes accepts the computed mode; otherwise the
// operator confirms or overrides interactively.
func resolveMode(computed classify.Mode, score int) (classify.Mode, error) {
	if installMode != "" {
		mode, err := classify.ParseMode(installMode)
		if err != nil {
			return "", errors.ConfigError("invalid --mode", err)
		}
		return mode, nil
	}

	if assumeYes {
		return computed, nil
	}

	mode, accepted, err := tui.Prompter{}.SelectMode(computed, score)
	if err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "mode selection failed", err)
	}
	if !accepted {
		return "", errors.Aborted("mode selection")
	}
	return mode, nil
}

func confirmer() checkpoint.Confirmer {
	if assumeYes {
		return checkpoint.AcceptAll
	}
	return tui.Prompter{}
}

func reportCheckpoint(r *checkpoint.Result) {
	switch {
	case r.Skipped:
		logInfo("No repository; local install proceeds without a checkpoint")
	case r.Tagged:
		logInfo("Checkpoint tag %s set", config.TagStart)
	}
	if r.Initialized {
		logInfo("Initialized new git repository")
	}
	if r.Stashed {
		logWarning("Uncommitted changes stashed; restore with 'git stash pop'")
	}
}

func checkpointDetails(r *checkpoint.Result) string {
	return fmt.Sprintf("tagged=%v initialized=%v stashed=%v skipped=%v",
		r.Tagged, r.Initialized, r.Stashed, r.Skipped)
}

func reportMigration(r *migrate.Result) {
	if len(r.Relocated) > 0 {
		logInfo("Relocated %d loose document(s) into docs/", len(r.Relocated))
		for _, move := range r.Relocated {
			fmt.Printf("  %s\n", move)
		}
	}

	fmt.Printf("  Installed: %d\n", len(r.Installed))
	fmt.Printf("  Refreshed: %d\n", len(r.Refreshed))
	if len(r.Skipped) > 0 {
		fmt.Printf("  Kept existing: %d\n", len(r.Skipped))
	}

	switch {
	case r.Committed:
		logSuccess("Installed files committed; tag %s set", config.TagComplete)
	case r.Ignored:
		logInfo("%s/ added to .gitignore", config.ConfigRoot)
	}
}

// reportValidation prints the post-install report and maps it to the
// process exit status. Warnings alone never fail the run.
func reportValidation(r *validate.Report, mode classify.Mode) error {
	fmt.Printf("  Skills: %d  Commands: %d  MCP servers: %d\n",
		r.SkillCount, r.CommandCount, r.MCPServerCount)

	for _, w := range r.Warnings {
		logWarning("%s", w)
	}
	for _, e := range r.Errors {
		logError("%s", e)
	}

	switch {
	case len(r.Errors) > 0:
		return errors.ValidationFailed(len(r.Errors))
	case r.Partial():
		logWarning("Install complete with %d warning(s) (%s mode)", len(r.Warnings), mode)
	default:
		logSuccess("Install complete and verified (%s mode)", mode)
	}
	return nil
}
