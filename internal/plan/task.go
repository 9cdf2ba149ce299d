package plan

// Task is one schedulable unit of work inside a plan.
type Task struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	DueDate        Date   `json:"dueDate"`
	EstimatedHours int    `json:"estimatedHours"`
	CompletedHours int    `json:"completedHours"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	Category       string `json:"category"`
}

// Task status constants. TaskStatusInProgress is a valid stored value but
// nothing currently emits it: the generator produces pending tasks and the
// toggle path only moves between pending and completed.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task priority constants
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Urgency bands for a task relative to today.
const (
	UrgencyNone    = "none"
	UrgencyUrgent  = "urgent"
	UrgencyOverdue = "overdue"
)

// DaysUntilDue returns the calendar-day distance from today to the task's
// due date. Negative means overdue.
func (t Task) DaysUntilDue(today Date) int {
	return today.DaysUntil(t.DueDate)
}

// Urgency bands the task for display: overdue when the due date has passed,
// urgent within two days, otherwise none. Completed tasks are never urgent.
func (t Task) Urgency(today Date) string {
	if t.Status == TaskStatusCompleted {
		return UrgencyNone
	}
	days := t.DaysUntilDue(today)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= 2:
		return UrgencyUrgent
	default:
		return UrgencyNone
	}
}
