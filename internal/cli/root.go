package cli

import (
	"studyforge/internal/cli/plan"
	"studyforge/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "studyforge",
	Short:   "Study-plan manager with deterministic schedule generation",
	Long:    `Studyforge generates dated, categorized study schedules for exams, projects and subject mastery, and tracks your progress through them. Run without arguments for the interactive UI.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(plan.PlanCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
