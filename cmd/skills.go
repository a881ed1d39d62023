package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/praxis-engineering/retrofit/internal/assets"
	"github.com/praxis-engineering/retrofit/internal/errors"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skills bundled with the toolkit",
	Args:  cobra.NoArgs,
	RunE:  runSkills,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	skills, err := assets.Skills()
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to read bundled skills", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, s := range skills {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
	}
	return w.Flush()
}
