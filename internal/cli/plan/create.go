package plan

import (
	"fmt"

	"studyforge/internal/generator"
	"studyforge/internal/plan"

	"github.com/spf13/cobra"
)

var (
	createTitle      string
	createType       string
	createSubject    string
	createStart      string
	createEnd        string
	createDailyHours int
	createWeaknesses []string
	createMethods    []string
	createGoals      string
	createDryRun     bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a new study plan",
	Long: `Generate a dated task schedule for a learning goal.

The plan type picks the generation strategy:
  exam     three phases: foundation, practice, review
  project  research, planning, development and finalization activities
  subject  weekly study and practice tasks per topic

Weaknesses matching a generated topic raise that topic's tasks to high
priority. Learning methods are stored as preferences and do not affect
scheduling; see the catalog below.

` + methodCatalog(),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := buildForm()
		if err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}

		p := generator.Generate(form)

		if createDryRun {
			printPreview(p)
			return nil
		}

		st, sessions, err := openStore()
		if err != nil {
			return err
		}
		if err := st.Append(p); err != nil {
			return err
		}
		if err := sessions.PlanCreated(p.ID); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		printSuccess(p)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Plan title (required)")
	createCmd.Flags().StringVar(&createType, "type", "", "Plan type: exam, project or subject (required)")
	createCmd.Flags().StringVar(&createSubject, "subject", "", "Subject to study (required)")
	createCmd.Flags().StringVar(&createStart, "start", "", "Start date, YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "End date, YYYY-MM-DD (required)")
	createCmd.Flags().IntVar(&createDailyHours, "daily-hours", 2, "Hours available per day")
	createCmd.Flags().StringSliceVar(&createWeaknesses, "weakness", nil, "Topic needing extra focus (repeatable)")
	createCmd.Flags().StringSliceVar(&createMethods, "method", nil, "Preferred learning method (repeatable)")
	createCmd.Flags().StringVar(&createGoals, "goals", "", "Free-text goals for this plan")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Preview the schedule without saving")
}

func buildForm() (generator.FormData, error) {
	form := generator.FormData{
		Title:           createTitle,
		Type:            createType,
		Subject:         createSubject,
		DailyHours:      createDailyHours,
		Weaknesses:      createWeaknesses,
		LearningMethods: createMethods,
		Goals:           createGoals,
	}

	if createStart != "" {
		start, err := plan.ParseDate(createStart)
		if err != nil {
			return form, err
		}
		form.StartDate = start
	}
	if createEnd != "" {
		end, err := plan.ParseDate(createEnd)
		if err != nil {
			return form, err
		}
		form.EndDate = end
	}
	return form, nil
}

func methodCatalog() string {
	out := "Learning methods by style:\n"
	for _, style := range generator.LearningStyles {
		out += fmt.Sprintf("  %-12s", style)
		for i, m := range generator.LearningMethods[style] {
			if i > 0 {
				out += ", "
			}
			out += m
		}
		out += "\n"
	}
	return out
}

// printPreview displays the generated schedule without saving.
func printPreview(p plan.Plan) {
	fmt.Println()
	fmt.Println("Plan preview (dry run - nothing saved):")
	fmt.Println()
	fmt.Printf("  Title: %s\n", p.Title)
	fmt.Printf("  Type: %s\n", p.Type)
	fmt.Printf("  Dates: %s to %s\n", p.StartDate, p.EndDate)
	fmt.Printf("  Total hours: %d\n", p.TotalHours)
	fmt.Printf("  Tasks: %d\n", len(p.Tasks))
	fmt.Println()

	order, groups := p.TasksByCategory()
	for _, category := range order {
		fmt.Printf("  %s:\n", category)
		for _, t := range groups[category] {
			fmt.Printf("    %s  %-40s %dh  %s\n", t.DueDate, t.Title, t.EstimatedHours, t.Priority)
		}
	}

	fmt.Println()
	fmt.Println("To create this plan, run without --dry-run.")
}

// printSuccess displays the result after the plan is saved.
func printSuccess(p plan.Plan) {
	fmt.Println()
	fmt.Printf("Plan created: %s (%s)\n", p.Title, shortID(p.ID))
	fmt.Println()
	fmt.Printf("  %d tasks scheduled from %s to %s, %d hours total.\n",
		len(p.Tasks), p.StartDate, p.EndDate, p.TotalHours)
	fmt.Println()
	fmt.Printf("Run `studyforge plan show %s` to see the schedule.\n", shortID(p.ID))
}
