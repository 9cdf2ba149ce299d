package generator

import (
	"fmt"
	"math"

	"studyforge/internal/plan"
	"studyforge/internal/util"
)

// Subject plans bucket topics into weeks: each topic gets a study task due on
// its week boundary and a practice task three days later.
func buildSubjectTasks(form FormData, totalDays int) []plan.Task {
	var tasks []plan.Task
	topics := ResolveTopics(form.Subject)

	// Float math throughout so degenerate durations fall through instead of
	// dividing by zero.
	weeks := math.Ceil(float64(totalDays) / 7)
	topicsPerWeek := math.Ceil(float64(len(topics)) / weeks)

	for i, topic := range topics {
		week := int(math.Floor(float64(i) / topicsPerWeek))
		studyDue := form.StartDate.AddDays((week + 1) * 7)
		priority := weaknessPriority(form.Weaknesses, topic)

		tasks = append(tasks, plan.Task{
			ID:             util.NewID(),
			Title:          fmt.Sprintf("Study %s", topic),
			Description:    fmt.Sprintf("Learn and understand %s concepts", topic),
			DueDate:        studyDue,
			EstimatedHours: form.DailyHours * 3,
			Priority:       priority,
			Status:         plan.TaskStatusPending,
			Category:       "Learning",
		})

		tasks = append(tasks, plan.Task{
			ID:             util.NewID(),
			Title:          fmt.Sprintf("Practice %s", topic),
			Description:    fmt.Sprintf("Apply %s knowledge through exercises", topic),
			DueDate:        studyDue.AddDays(3),
			EstimatedHours: form.DailyHours * 2,
			Priority:       priority,
			Status:         plan.TaskStatusPending,
			Category:       "Practice",
		})
	}

	return tasks
}
