package plan

import (
	"fmt"

	"studyforge/internal/plan"

	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Toggle task completion",
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <plan> <task>",
	Short: "Mark a task completed",
	Long:  `Mark a task completed. The task is referenced by its number in 'plan show' output or by ID.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleTask(args[0], args[1], true)
	},
}

var taskUndoCmd = &cobra.Command{
	Use:   "undo <plan> <task>",
	Short: "Move a completed task back to pending",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleTask(args[0], args[1], false)
	},
}

func init() {
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskUndoCmd)
}

func toggleTask(planRef, taskRef string, done bool) error {
	st, sessions, err := openStore()
	if err != nil {
		return err
	}
	p, err := st.Find(planRef)
	if err != nil {
		return err
	}
	t, err := resolveTask(p, taskRef)
	if err != nil {
		return err
	}

	if done && t.Status == plan.TaskStatusCompleted {
		fmt.Printf("Task %q is already completed.\n", t.Title)
		return nil
	}
	if !done && t.Status != plan.TaskStatusCompleted {
		fmt.Printf("Task %q is not completed.\n", t.Title)
		return nil
	}

	updated, err := st.ToggleTask(p.ID, t.ID)
	if err != nil {
		return err
	}

	toggled := updated.Task(t.ID)
	if toggled.Status == plan.TaskStatusCompleted {
		if err := sessions.TaskCompleted(p.ID, t.ID, toggled.EstimatedHours); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}
		fmt.Printf("Completed %q (+%dh). Plan progress: %.0f%%.\n",
			toggled.Title, toggled.EstimatedHours, updated.Progress())
	} else {
		if err := sessions.TaskReopened(p.ID, t.ID); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}
		fmt.Printf("Reopened %q. Plan progress: %.0f%%.\n", toggled.Title, updated.Progress())
	}
	return nil
}
