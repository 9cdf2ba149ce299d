package generator

import (
	"fmt"
	"math"

	"studyforge/internal/plan"
	"studyforge/internal/util"
)

// Exam plans run through three sequential phases with fixed time splits:
// Foundation 40%, Practice 35%, Review the remaining 25%.
func buildExamTasks(form FormData, totalDays int) []plan.Task {
	var tasks []plan.Task
	topics := ResolveTopics(form.Subject)

	// Foundation: first three topics, evenly spaced across the window.
	foundationDays := int(math.Floor(float64(totalDays) * 0.4))
	foundation := topics
	if len(foundation) > 3 {
		foundation = foundation[:3]
	}
	for i, topic := range foundation {
		offset := int(math.Floor(float64(foundationDays) / 3 * float64(i+1)))
		tasks = append(tasks, plan.Task{
			ID:             util.NewID(),
			Title:          fmt.Sprintf("Master %s Fundamentals", topic),
			Description:    fmt.Sprintf("Study core concepts and basic principles of %s", topic),
			DueDate:        form.StartDate.AddDays(offset),
			EstimatedHours: form.DailyHours * 3,
			Priority:       weaknessPriority(form.Weaknesses, topic),
			Status:         plan.TaskStatusPending,
			Category:       "Foundation",
		})
	}

	// Practice: every resolved topic, starting right after the foundation
	// window.
	practiceStart := foundationDays
	practiceDays := int(math.Floor(float64(totalDays) * 0.35))
	for i, topic := range topics {
		offset := practiceStart + int(math.Floor(float64(practiceDays)/float64(len(topics))*float64(i+1)))
		tasks = append(tasks, plan.Task{
			ID:             util.NewID(),
			Title:          fmt.Sprintf("%s Practice Problems", topic),
			Description:    fmt.Sprintf("Complete practice exercises and solve sample problems for %s", topic),
			DueDate:        form.StartDate.AddDays(offset),
			EstimatedHours: form.DailyHours * 2,
			Priority:       weaknessPriority(form.Weaknesses, topic),
			Status:         plan.TaskStatusPending,
			Category:       "Practice",
		})
	}

	// Review: always exactly two tasks, the mock exam pinned to the end date.
	reviewStart := foundationDays + practiceDays
	reviewDays := totalDays - reviewStart

	tasks = append(tasks, plan.Task{
		ID:             util.NewID(),
		Title:          "Comprehensive Review",
		Description:    "Review all topics and focus on identified weaknesses",
		DueDate:        form.StartDate.AddDays(reviewStart + int(math.Floor(float64(reviewDays)*0.6))),
		EstimatedHours: form.DailyHours * 4,
		Priority:       plan.PriorityHigh,
		Status:         plan.TaskStatusPending,
		Category:       "Review",
	})

	tasks = append(tasks, plan.Task{
		ID:             util.NewID(),
		Title:          "Mock Exams",
		Description:    "Take practice exams under timed conditions",
		DueDate:        form.EndDate,
		EstimatedHours: form.DailyHours * 2,
		Priority:       plan.PriorityHigh,
		Status:         plan.TaskStatusPending,
		Category:       "Assessment",
	})

	return tasks
}
