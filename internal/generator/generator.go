// Package generator turns a study-plan form into a complete schedule of
// dated, categorized tasks. Generation is pure and deterministic: the same
// form always yields the same task sequence apart from IDs and the creation
// timestamp.
package generator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"studyforge/internal/plan"
	"studyforge/internal/util"
)

// FormData is the input contract for plan generation.
type FormData struct {
	Title           string
	Type            string
	Subject         string
	StartDate       plan.Date
	EndDate         plan.Date
	DailyHours      int
	Weaknesses      []string
	LearningMethods []string
	Goals           string
}

// ErrInvalidDateRange is returned by Validate when the end date precedes the
// start date.
var ErrInvalidDateRange = errors.New("end date is before start date")

// Validate checks the form at the input boundary. Generate itself never
// validates: callers that skip this get structurally valid but possibly
// nonsensical schedules, matching the permissive core contract.
func (f FormData) Validate() error {
	if f.Title == "" {
		return errors.New("title is required")
	}
	if !plan.ValidType(f.Type) {
		return fmt.Errorf("unknown plan type %q: expected exam, project or subject", f.Type)
	}
	if f.Subject == "" {
		return errors.New("subject is required")
	}
	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if f.EndDate.Before(f.StartDate) {
		return ErrInvalidDateRange
	}
	if f.DailyHours <= 0 {
		return fmt.Errorf("daily hours must be positive, got %d", f.DailyHours)
	}
	return nil
}

// Generate builds a new plan from the form. No I/O, no validation: it
// dispatches to the builder for the form's type and assembles the result.
// An unknown type yields a plan with zero tasks.
func Generate(form FormData) plan.Plan {
	totalDays := totalDays(form.StartDate, form.EndDate)
	totalHours := totalDays * form.DailyHours

	var tasks []plan.Task
	switch form.Type {
	case plan.TypeExam:
		tasks = buildExamTasks(form, totalDays)
	case plan.TypeProject:
		tasks = buildProjectTasks(form, totalDays)
	case plan.TypeSubject:
		tasks = buildSubjectTasks(form, totalDays)
	default:
		tasks = []plan.Task{}
	}

	return plan.Plan{
		ID:              util.NewID(),
		Title:           form.Title,
		Type:            form.Type,
		Subject:         form.Subject,
		StartDate:       form.StartDate,
		EndDate:         form.EndDate,
		TotalHours:      totalHours,
		CompletedHours:  0,
		Tasks:           tasks,
		Weaknesses:      form.Weaknesses,
		LearningMethods: form.LearningMethods,
		Status:          plan.StatusActive,
		CreatedAt:       time.Now().UTC(),
	}
}

// totalDays is the ceiling of the day span between the two dates. A plan
// starting and ending on the same day spans zero days; an inverted range goes
// negative and propagates untouched.
func totalDays(start, end plan.Date) int {
	return int(math.Ceil(end.Time().Sub(start.Time()).Hours() / 24))
}

// isWeakness reports whether topic exactly matches one of the declared
// weaknesses.
func isWeakness(weaknesses []string, topic string) bool {
	for _, w := range weaknesses {
		if w == topic {
			return true
		}
	}
	return false
}

// weaknessPriority escalates tasks covering a declared weakness.
func weaknessPriority(weaknesses []string, topic string) string {
	if isWeakness(weaknesses, topic) {
		return plan.PriorityHigh
	}
	return plan.PriorityMedium
}
