package store

import (
	"encoding/json"
	"os"
	"time"

	"studyforge/internal/util"
)

// Event type constants for the session log.
const (
	EventPlanCreated       = "plan_created"
	EventPlanStatusChanged = "plan_status_changed"
	EventPlanDeleted       = "plan_deleted"
	EventTaskCompleted     = "task_completed"
	EventTaskReopened      = "task_reopened"
)

// SessionEvent is one study-session log entry.
type SessionEvent struct {
	ID       string    `json:"id"`
	PlanID   string    `json:"planId"`
	TaskID   string    `json:"taskId,omitempty"`
	Event    string    `json:"event"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
	Notes    string    `json:"notes,omitempty"`
}

// SessionLog appends study-session events to a JSON Lines file.
type SessionLog struct {
	path string
}

// NewSessionLog creates a session log writing to the given path.
func NewSessionLog(path string) *SessionLog {
	return &SessionLog{path: path}
}

// Log appends one event, filling in its ID and timestamp.
func (l *SessionLog) Log(event string, planID, taskID string, duration int, notes string) error {
	entry := SessionEvent{
		ID:       util.NewID(),
		PlanID:   planID,
		TaskID:   taskID,
		Event:    event,
		Date:     time.Now().UTC(),
		Duration: duration,
		Notes:    notes,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	jsonBytes = append(jsonBytes, '\n')

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(jsonBytes)
	return err
}

// PlanCreated logs a plan_created event.
func (l *SessionLog) PlanCreated(planID string) error {
	return l.Log(EventPlanCreated, planID, "", 0, "")
}

// StatusChanged logs a plan_status_changed event.
func (l *SessionLog) StatusChanged(planID, status string) error {
	return l.Log(EventPlanStatusChanged, planID, "", 0, status)
}

// PlanDeleted logs a plan_deleted event.
func (l *SessionLog) PlanDeleted(planID string) error {
	return l.Log(EventPlanDeleted, planID, "", 0, "")
}

// TaskCompleted logs a task_completed event with the hours studied.
func (l *SessionLog) TaskCompleted(planID, taskID string, hours int) error {
	return l.Log(EventTaskCompleted, planID, taskID, hours, "")
}

// TaskReopened logs a task_reopened event.
func (l *SessionLog) TaskReopened(planID, taskID string) error {
	return l.Log(EventTaskReopened, planID, taskID, 0, "")
}
