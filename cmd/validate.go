package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxis-engineering/retrofit/internal/classify"
	"github.com/praxis-engineering/retrofit/internal/errors"
	"github.com/praxis-engineering/retrofit/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Verify a previously installed toolkit",
	Long: `validate re-scans the target against the install manifest.

The mode comes from the install record written on first install, or from
--mode when overriding. Missing required files are errors; missing
optional files are warnings.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var validateMode string

func init() {
	validateCmd.Flags().StringVar(&validateMode, "mode", "", "Mode to validate against (default: recorded mode)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget()
	if err != nil {
		return err
	}

	mode, err := validationMode(target)
	if err != nil {
		return err
	}

	report := validate.New().Check(target, mode)

	fmt.Printf("Target: %s\n", target)
	fmt.Printf("Mode: %s\n", mode)
	fmt.Printf("Skills: %d  Commands: %d  MCP servers: %d\n",
		report.SkillCount, report.CommandCount, report.MCPServerCount)

	for _, w := range report.Warnings {
		logWarning("%s", w)
	}
	for _, e := range report.Errors {
		logError("%s", e)
	}

	switch {
	case len(report.Errors) > 0:
		return errors.ValidationFailed(len(report.Errors))
	case report.Partial():
		logWarning("Valid with %d warning(s)", len(report.Warnings))
	default:
		logSuccess("Toolkit is complete")
	}
	return nil
}

// validationMode resolves the mode to check against: an explicit flag,
// then the recorded mode from the first install, then full.
func validationMode(target string) (classify.Mode, error) {
	if validateMode != "" {
		mode, err := classify.ParseMode(validateMode)
		if err != nil {
			return "", errors.ConfigError("invalid --mode", err)
		}
		return mode, nil
	}

	if rec := loadRecord(target); rec != nil {
		if mode, err := classify.ParseMode(rec.Mode); err == nil {
			return mode, nil
		}
	}

	return classify.ModeFull, nil
}
