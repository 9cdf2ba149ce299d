package plan

import "time"

// Plan is one study schedule: metadata plus the ordered tasks generated for it.
type Plan struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Subject         string    `json:"subject"`
	StartDate       Date      `json:"startDate"`
	EndDate         Date      `json:"endDate"`
	TotalHours      int       `json:"totalHours"`
	CompletedHours  int       `json:"completedHours"`
	Tasks           []Task    `json:"tasks"`
	Weaknesses      []string  `json:"weaknesses"`
	LearningMethods []string  `json:"learningMethods"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Plan type constants
const (
	TypeExam    = "exam"
	TypeProject = "project"
	TypeSubject = "subject"
)

// Plan status constants
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPaused    = "paused"
)

// ValidType reports whether t is one of the known plan types.
func ValidType(t string) bool {
	return t == TypeExam || t == TypeProject || t == TypeSubject
}

// ValidStatus reports whether s is one of the known plan statuses.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusCompleted || s == StatusPaused
}

// RecomputeCompletedHours sets CompletedHours to the sum over all tasks.
// Always a full recompute, never an incremental patch, so the sum invariant
// holds by construction.
func (p *Plan) RecomputeCompletedHours() {
	total := 0
	for i := range p.Tasks {
		total += p.Tasks[i].CompletedHours
	}
	p.CompletedHours = total
}

// ToggleTask flips the task with the given ID between pending and completed,
// keeping its CompletedHours in lockstep, then recomputes the plan total.
// Returns false if no task has that ID. Tasks in other states are left alone.
func (p *Plan) ToggleTask(taskID string) bool {
	for i := range p.Tasks {
		if p.Tasks[i].ID != taskID {
			continue
		}
		t := &p.Tasks[i]
		switch t.Status {
		case TaskStatusCompleted:
			t.Status = TaskStatusPending
			t.CompletedHours = 0
		case TaskStatusPending:
			t.Status = TaskStatusCompleted
			t.CompletedHours = t.EstimatedHours
		default:
			return false
		}
		p.RecomputeCompletedHours()
		return true
	}
	return false
}

// Task returns a pointer to the task with the given ID, or nil.
func (p *Plan) Task(taskID string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			return &p.Tasks[i]
		}
	}
	return nil
}

// Progress returns completion as a percentage of TotalHours, 0 when the plan
// has no hours.
func (p *Plan) Progress() float64 {
	if p.TotalHours <= 0 {
		return 0
	}
	return float64(p.CompletedHours) / float64(p.TotalHours) * 100
}

// CompletedTaskCount returns how many tasks are completed.
func (p *Plan) CompletedTaskCount() int {
	n := 0
	for i := range p.Tasks {
		if p.Tasks[i].Status == TaskStatusCompleted {
			n++
		}
	}
	return n
}

// TasksByCategory groups tasks by category, preserving both the order in
// which categories first appear and the task order within each.
func (p *Plan) TasksByCategory() ([]string, map[string][]Task) {
	var order []string
	groups := make(map[string][]Task)
	for _, t := range p.Tasks {
		if _, ok := groups[t.Category]; !ok {
			order = append(order, t.Category)
		}
		groups[t.Category] = append(groups[t.Category], t)
	}
	return order, groups
}
