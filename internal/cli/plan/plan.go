package plan

import (
	"fmt"
	"strconv"
	"strings"

	"studyforge/internal/config"
	"studyforge/internal/plan"
	"studyforge/internal/store"

	"github.com/spf13/cobra"
)

// PlanCmd is the parent command for plan-related subcommands.
var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage study plans",
	Long:  `Commands for generating study plans and tracking task completion.`,
}

func init() {
	PlanCmd.AddCommand(createCmd)
	PlanCmd.AddCommand(listCmd)
	PlanCmd.AddCommand(showCmd)
	PlanCmd.AddCommand(pauseCmd)
	PlanCmd.AddCommand(resumeCmd)
	PlanCmd.AddCommand(completeCmd)
	PlanCmd.AddCommand(deleteCmd)
	PlanCmd.AddCommand(taskCmd)
}

// openStore builds the store and session log from the environment config.
func openStore() (*store.Store, *store.SessionLog, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	var adapter store.Adapter
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		adapter, err = store.OpenSQLite(cfg.DatabasePath())
		if err != nil {
			return nil, nil, err
		}
	default:
		adapter = store.NewFileAdapter(cfg.PlansPath())
	}

	st, err := store.Open(adapter)
	if err != nil {
		return nil, nil, err
	}
	return st, store.NewSessionLog(cfg.SessionLogPath()), nil
}

// resolveTask resolves a task reference within a plan: an exact ID, an ID
// prefix, or the 1-based position shown by `plan show`. Numbers follow the
// category-grouped order `plan show` prints, not raw storage order.
func resolveTask(p plan.Plan, ref string) (plan.Task, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		var displayed []plan.Task
		order, groups := p.TasksByCategory()
		for _, category := range order {
			displayed = append(displayed, groups[category]...)
		}
		if n < 1 || n > len(displayed) {
			return plan.Task{}, fmt.Errorf("task number %d out of range 1-%d", n, len(displayed))
		}
		return displayed[n-1], nil
	}

	var matches []plan.Task
	for _, t := range p.Tasks {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		return plan.Task{}, fmt.Errorf("task not found: %s", ref)
	}
	if len(matches) > 1 {
		return plan.Task{}, fmt.Errorf("reference %q matches %d tasks, use the full ID", ref, len(matches))
	}
	return matches[0], nil
}

// shortID trims an ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
