package plan

import (
	"fmt"

	"studyforge/internal/plan"

	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause <plan>",
	Short: "Pause an active plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args[0], plan.StatusPaused)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume <plan>",
	Short: "Resume a paused plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args[0], plan.StatusActive)
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <plan>",
	Short: "Mark a plan as completed",
	Long:  `Mark a plan as completed. Plans never complete automatically, even at 100% task completion; this is the only way to get there.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args[0], plan.StatusCompleted)
	},
}

func setStatus(ref, status string) error {
	st, sessions, err := openStore()
	if err != nil {
		return err
	}
	p, err := st.Find(ref)
	if err != nil {
		return err
	}

	updated, err := st.SetStatus(p.ID, status)
	if err != nil {
		return err
	}
	if err := sessions.StatusChanged(updated.ID, status); err != nil {
		return fmt.Errorf("failed to log session: %w", err)
	}

	fmt.Printf("Plan %s is now %s.\n", updated.Title, updated.Status)
	return nil
}
