package plan

import (
	"fmt"
	"strings"
	"time"

	"studyforge/internal/plan"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <plan>",
	Short: "Show a plan's schedule and progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore()
		if err != nil {
			return err
		}
		p, err := st.Find(args[0])
		if err != nil {
			return err
		}

		printPlan(p, plan.DateOf(time.Now()))
		return nil
	},
}

func printPlan(p plan.Plan, today plan.Date) {
	fmt.Println()
	fmt.Printf("%s  [%s, %s]\n", p.Title, p.Type, p.Status)
	fmt.Printf("%s\n", p.Subject)
	fmt.Println()
	fmt.Printf("  %s to %s\n", p.StartDate, p.EndDate)
	fmt.Printf("  %d/%d hours (%.0f%%), %d/%d tasks completed\n",
		p.CompletedHours, p.TotalHours, p.Progress(), p.CompletedTaskCount(), len(p.Tasks))

	if len(p.Weaknesses) > 0 {
		fmt.Printf("  Focus areas: %s\n", strings.Join(p.Weaknesses, ", "))
	}
	if len(p.LearningMethods) > 0 {
		fmt.Printf("  Methods: %s\n", strings.Join(p.LearningMethods, ", "))
	}

	taskNum := 0
	order, groups := p.TasksByCategory()
	for _, category := range order {
		tasks := groups[category]
		done := 0
		for _, t := range tasks {
			if t.Status == plan.TaskStatusCompleted {
				done++
			}
		}

		fmt.Println()
		fmt.Printf("  %s (%d/%d)\n", category, done, len(tasks))
		for _, t := range tasks {
			taskNum++
			fmt.Printf("  %2d. %s %-42s %s  %dh  %s%s\n",
				taskNum,
				checkbox(t.Status),
				truncate(t.Title, 42),
				t.DueDate,
				t.EstimatedHours,
				t.Priority,
				urgencyTag(t, today),
			)
		}
	}
	fmt.Println()
}

func checkbox(status string) string {
	if status == plan.TaskStatusCompleted {
		return "[x]"
	}
	return "[ ]"
}

func urgencyTag(t plan.Task, today plan.Date) string {
	switch t.Urgency(today) {
	case plan.UrgencyOverdue:
		return "  (overdue)"
	case plan.UrgencyUrgent:
		return "  (due soon)"
	default:
		return ""
	}
}
