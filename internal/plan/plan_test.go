package plan

import (
	"testing"
	"time"
)

func samplePlan() Plan {
	return Plan{
		ID:         "plan-1",
		Title:      "Calculus Final",
		Type:       TypeExam,
		Subject:    "Mathematics",
		StartDate:  NewDate(2025, time.January, 1),
		EndDate:    NewDate(2025, time.February, 1),
		TotalHours: 62,
		Status:     StatusActive,
		Tasks: []Task{
			{ID: "t1", Title: "Study Algebra", EstimatedHours: 6, Status: TaskStatusPending, Category: "Learning"},
			{ID: "t2", Title: "Practice Algebra", EstimatedHours: 4, Status: TaskStatusPending, Category: "Practice"},
			{ID: "t3", Title: "Study Calculus", EstimatedHours: 6, Status: TaskStatusPending, Category: "Learning"},
		},
	}
}

func TestToggleTask(t *testing.T) {
	t.Run("pending to completed flips hours in lockstep", func(t *testing.T) {
		p := samplePlan()
		if !p.ToggleTask("t1") {
			t.Fatal("ToggleTask returned false for existing task")
		}

		task := p.Task("t1")
		if task.Status != TaskStatusCompleted {
			t.Errorf("status = %q, want %q", task.Status, TaskStatusCompleted)
		}
		if task.CompletedHours != task.EstimatedHours {
			t.Errorf("completedHours = %d, want %d", task.CompletedHours, task.EstimatedHours)
		}
		if p.CompletedHours != 6 {
			t.Errorf("plan completedHours = %d, want 6", p.CompletedHours)
		}
	})

	t.Run("completed back to pending zeroes hours", func(t *testing.T) {
		p := samplePlan()
		p.ToggleTask("t1")
		p.ToggleTask("t1")

		task := p.Task("t1")
		if task.Status != TaskStatusPending {
			t.Errorf("status = %q, want %q", task.Status, TaskStatusPending)
		}
		if task.CompletedHours != 0 {
			t.Errorf("completedHours = %d, want 0", task.CompletedHours)
		}
		if p.CompletedHours != 0 {
			t.Errorf("plan completedHours = %d, want 0", p.CompletedHours)
		}
	})

	t.Run("unknown task is a no-op", func(t *testing.T) {
		p := samplePlan()
		if p.ToggleTask("nope") {
			t.Error("ToggleTask returned true for unknown task")
		}
		if p.CompletedHours != 0 {
			t.Errorf("plan completedHours = %d, want 0", p.CompletedHours)
		}
	})

	t.Run("in-progress tasks are left alone", func(t *testing.T) {
		p := samplePlan()
		p.Tasks[0].Status = TaskStatusInProgress
		if p.ToggleTask("t1") {
			t.Error("ToggleTask toggled an in-progress task")
		}
		if p.Tasks[0].Status != TaskStatusInProgress {
			t.Errorf("status changed to %q", p.Tasks[0].Status)
		}
	})
}

func TestSumInvariant(t *testing.T) {
	p := samplePlan()

	check := func() {
		t.Helper()
		sum := 0
		for _, task := range p.Tasks {
			sum += task.CompletedHours
		}
		if p.CompletedHours != sum {
			t.Fatalf("completedHours = %d, task sum = %d", p.CompletedHours, sum)
		}
	}

	for _, id := range []string{"t1", "t2", "t3", "t2", "t1", "t3", "t3"} {
		p.ToggleTask(id)
		check()
	}
}

func TestBinaryTaskHours(t *testing.T) {
	p := samplePlan()
	for _, id := range []string{"t1", "t2", "t1", "t3"} {
		p.ToggleTask(id)
		for _, task := range p.Tasks {
			if task.CompletedHours != 0 && task.CompletedHours != task.EstimatedHours {
				t.Fatalf("task %s completedHours = %d, want 0 or %d",
					task.ID, task.CompletedHours, task.EstimatedHours)
			}
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		want      float64
	}{
		{"untouched", 100, 0, 0},
		{"halfway", 100, 50, 50},
		{"done", 100, 100, 100},
		{"zero total hours", 0, 0, 0},
		{"negative total hours", -10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Plan{TotalHours: tc.total, CompletedHours: tc.completed}
			if got := p.Progress(); got != tc.want {
				t.Errorf("Progress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTasksByCategory(t *testing.T) {
	p := samplePlan()
	order, groups := p.TasksByCategory()

	wantOrder := []string{"Learning", "Practice"}
	if len(order) != len(wantOrder) {
		t.Fatalf("category count = %d, want %d", len(order), len(wantOrder))
	}
	for i, c := range wantOrder {
		if order[i] != c {
			t.Errorf("order[%d] = %q, want %q", i, order[i], c)
		}
	}

	if len(groups["Learning"]) != 2 {
		t.Errorf("Learning group size = %d, want 2", len(groups["Learning"]))
	}
	if groups["Learning"][0].ID != "t1" || groups["Learning"][1].ID != "t3" {
		t.Error("Learning group lost task order")
	}
}

func TestTaskUrgency(t *testing.T) {
	today := NewDate(2025, time.June, 10)

	tests := []struct {
		name   string
		due    Date
		status string
		want   string
	}{
		{"far out", today.AddDays(10), TaskStatusPending, UrgencyNone},
		{"three days", today.AddDays(3), TaskStatusPending, UrgencyNone},
		{"two days", today.AddDays(2), TaskStatusPending, UrgencyUrgent},
		{"due today", today, TaskStatusPending, UrgencyUrgent},
		{"yesterday", today.AddDays(-1), TaskStatusPending, UrgencyOverdue},
		{"overdue but completed", today.AddDays(-5), TaskStatusCompleted, UrgencyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{DueDate: tc.due, Status: tc.status}
			if got := task.Urgency(today); got != tc.want {
				t.Errorf("Urgency() = %q, want %q", got, tc.want)
			}
		})
	}
}
