package generator

import (
	"fmt"
	"math"
	"strings"

	"studyforge/internal/plan"
	"studyforge/internal/util"
)

// projectPhase is one of the four fixed project phases with its activities.
type projectPhase struct {
	name       string
	activities []string
}

var projectPhases = []projectPhase{
	{"research", []string{"Literature Review", "Data Collection", "Market Analysis", "Requirements Gathering"}},
	{"planning", []string{"Project Scope", "Timeline Creation", "Resource Planning", "Risk Assessment"}},
	{"development", []string{"Prototype Creation", "Implementation", "Testing", "Iteration"}},
	{"finalization", []string{"Documentation", "Presentation Prep", "Final Review", "Submission"}},
}

// Project plans split the duration evenly across the four phases and space
// each phase's activities evenly within it. Only finalization tasks are high
// priority.
func buildProjectTasks(form FormData, totalDays int) []plan.Task {
	var tasks []plan.Task
	daysPerPhase := totalDays / len(projectPhases)

	for phaseIndex, phase := range projectPhases {
		activityCount := len(phase.activities)
		for activityIndex, activity := range phase.activities {
			offset := phaseIndex*daysPerPhase +
				int(math.Floor(float64(daysPerPhase)/float64(activityCount)*float64(activityIndex+1)))

			priority := plan.PriorityMedium
			if phaseIndex == len(projectPhases)-1 {
				priority = plan.PriorityHigh
			}

			tasks = append(tasks, plan.Task{
				ID:             util.NewID(),
				Title:          activity,
				Description:    fmt.Sprintf("Complete %s for %s project", activity, form.Subject),
				DueDate:        form.StartDate.AddDays(offset),
				EstimatedHours: maxInt(2, int(math.Floor(float64(form.DailyHours)*1.5))),
				Priority:       priority,
				Status:         plan.TaskStatusPending,
				Category:       capitalize(phase.name),
			})
		}
	}

	return tasks
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
