package cmd

import (
	"context"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/praxis-engineering/retrofit/internal/audit"
	"github.com/praxis-engineering/retrofit/internal/checkpoint"
	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/errors"
	"github.com/praxis-engineering/retrofit/internal/system"
	"github.com/praxis-engineering/retrofit/internal/tui"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Reset the target to its pre-install state",
	Long: `rollback hard-resets the repository to the ` + config.TagStart + ` tag
set before the last install. Files created since the checkpoint are lost.`,
	Args: cobra.NoArgs,
	RunE: runRollback,
}

func init() {
	rollbackCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation")
	rootCmd.AddCommand(rollbackCmd)
}

func runRollback(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	target, err := resolveTarget()
	if err != nil {
		return err
	}

	if !assumeYes {
		ok, err := tui.Prompter{}.Confirm("Hard-reset to " + config.TagStart + "? Uncommitted work will be lost.")
		if err != nil {
			return errors.Wrap(errors.ExitGeneralError, "confirmation failed", err)
		}
		if !ok {
			return errors.Aborted("rollback")
		}
	}

	rec := loadRecord(target)

	if err := checkpoint.Rollback(ctx, checkpoint.NewGit(), target); err != nil {
		return err
	}

	auditor := audit.NewLogger(system.DefaultFS(), target)
	auditor.LogEvent(audit.EventRollback, "", "reset to "+config.TagStart)

	logSuccess("Reset to %s", config.TagStart)

	reinstall := []string{"retrofit", "--target", target}
	if rec != nil {
		reinstall = append(reinstall, "--mode", rec.Mode)
	}
	logInfo("Reinstall with: %s", shellquote.Join(reinstall...))

	return nil
}
