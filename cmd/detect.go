package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxis-engineering/retrofit/internal/classify"
	"github.com/praxis-engineering/retrofit/internal/signals"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show project signals and the computed install mode",
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget()
	if err != nil {
		return err
	}

	sig := signals.NewDetector().Detect(context.Background(), target)
	score := classify.Score(sig)
	mode := classify.Classify(sig)

	fmt.Printf("Target: %s\n", target)
	fmt.Println()
	fmt.Println("Signals:")
	fmt.Printf("  Recent commits (30d): %d\n", sig.RecentCommits)
	fmt.Printf("  Deployment config:    %s\n", boolMark(sig.HasDeployment))
	fmt.Printf("  CI pipeline:          %s\n", boolMark(sig.HasCI))
	fmt.Printf("  Production env:       %s\n", boolMark(sig.HasProductionEnv))
	fmt.Println()
	fmt.Printf("Score: %d\n", score)
	fmt.Printf("Mode: %s\n", mode)

	if rec := loadRecord(target); rec != nil {
		fmt.Println()
		fmt.Printf("Installed: v%s (%s mode) at %s\n",
			rec.Version, rec.Mode, rec.InstalledAt.Format("2006-01-02 15:04"))
	}

	return nil
}

func boolMark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
