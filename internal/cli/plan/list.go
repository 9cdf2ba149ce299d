package plan

import (
	"fmt"

	"studyforge/internal/plan"

	"github.com/spf13/cobra"
)

var listStatus string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List study plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listStatus != "" && !plan.ValidStatus(listStatus) {
			return fmt.Errorf("invalid status filter %q: expected active, completed or paused", listStatus)
		}

		st, _, err := openStore()
		if err != nil {
			return err
		}

		var plans []plan.Plan
		for _, p := range st.All() {
			if listStatus == "" || p.Status == listStatus {
				plans = append(plans, p)
			}
		}

		if len(plans) == 0 {
			if listStatus != "" {
				fmt.Printf("No %s plans.\n", listStatus)
			} else {
				fmt.Println("No plans yet. Run `studyforge plan create` to make one.")
			}
			return nil
		}

		fmt.Printf("%-10s %-28s %-8s %-10s %-12s %s\n", "ID", "TITLE", "TYPE", "STATUS", "PROGRESS", "TASKS")
		for _, p := range plans {
			fmt.Printf("%-10s %-28s %-8s %-10s %-12s %d/%d\n",
				shortID(p.ID),
				truncate(p.Title, 28),
				p.Type,
				p.Status,
				fmt.Sprintf("%.0f%%", p.Progress()),
				p.CompletedTaskCount(),
				len(p.Tasks),
			)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status: active, completed or paused")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
