package plan

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <plan>",
	Short: "Delete a plan and its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sessions, err := openStore()
		if err != nil {
			return err
		}
		p, err := st.Find(args[0])
		if err != nil {
			return err
		}

		if err := st.Remove(p.ID); err != nil {
			return err
		}
		if err := sessions.PlanDeleted(p.ID); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		fmt.Printf("Deleted plan %s (%s).\n", p.Title, shortID(p.ID))
		return nil
	},
}
