package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"studyforge/internal/plan"
	"studyforge/internal/store"
	"studyforge/internal/tui/components"
	"studyforge/internal/tui/msgs"
	"studyforge/internal/tui/styles"
)

// PlanDetailModel shows one plan's schedule and toggles task completion.
type PlanDetailModel struct {
	store    *store.Store
	sessions *store.SessionLog
	planID   string
	cursor   int // index into the plan's task slice
	errMsg   string
	width    int
	height   int
}

// NewPlanDetailModel creates the detail view for the given plan.
func NewPlanDetailModel(st *store.Store, sessions *store.SessionLog, planID string) PlanDetailModel {
	return PlanDetailModel{store: st, sessions: sessions, planID: planID}
}

// Init implements tea.Model.
func (m PlanDetailModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlanDetailModel) Update(msg tea.Msg) (PlanDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		p, err := m.store.Get(m.planID)
		if err != nil {
			// Plan vanished underneath us; go back to the list.
			return m, func() tea.Msg { return msgs.GoToListMsg{} }
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			return m, func() tea.Msg { return msgs.GoToListMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(p.Tasks)-1 {
				m.cursor++
			}
		case " ", "enter":
			ordered := orderedTasks(p)
			if m.cursor < len(ordered) {
				m.errMsg = ""
				task := ordered[m.cursor]
				updated, err := m.store.ToggleTask(p.ID, task.ID)
				if err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
				if t := updated.Task(task.ID); t != nil {
					if t.Status == plan.TaskStatusCompleted {
						m.sessions.TaskCompleted(p.ID, t.ID, t.EstimatedHours)
					} else {
						m.sessions.TaskReopened(p.ID, t.ID)
					}
				}
			}
		case "p":
			m.errMsg = ""
			next := plan.StatusPaused
			if p.Status != plan.StatusActive {
				next = plan.StatusActive
			}
			if _, err := m.store.SetStatus(p.ID, next); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.sessions.StatusChanged(p.ID, next)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PlanDetailModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	p, err := m.store.Get(m.planID)
	if err != nil {
		return styles.ErrorStyle.Render(err.Error())
	}

	today := plan.DateOf(time.Now())
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s  [%s]", p.Title, p.Type)))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("%s   %s to %s   %s",
		p.Subject, p.StartDate, p.EndDate, p.Status)))
	b.WriteString("\n\n")

	bar := components.Progress{CompletedHours: p.CompletedHours, TotalHours: p.TotalHours, Width: 24, ShowHours: true}
	b.WriteString(bar.View())
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("   %d/%d tasks", p.CompletedTaskCount(), len(p.Tasks))))
	b.WriteString("\n")

	if len(p.Weaknesses) > 0 {
		b.WriteString(styles.UrgentStyle.Render("Focus: " + strings.Join(p.Weaknesses, ", ")))
		b.WriteString("\n")
	}

	index := 0
	order, groups := p.TasksByCategory()
	for _, category := range order {
		b.WriteString("\n")
		b.WriteString(styles.SelectedStyle.Render(category))
		b.WriteString("\n")
		for _, t := range groups[category] {
			line := m.renderTask(t, today, index == m.cursor)
			b.WriteString(line)
			b.WriteString("\n")
			index++
		}
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	pauseHint := "p: pause"
	if p.Status != plan.StatusActive {
		pauseHint = "p: resume"
	}
	b.WriteString(styles.SubtleStyle.Render("space: toggle  " + pauseHint + "  esc: back"))
	return b.String()
}

// orderedTasks flattens the category grouping into the order tasks are
// rendered, so the cursor always points at the line it highlights.
func orderedTasks(p plan.Plan) []plan.Task {
	var out []plan.Task
	order, groups := p.TasksByCategory()
	for _, category := range order {
		out = append(out, groups[category]...)
	}
	return out
}

// renderTask renders one task line.
func (m PlanDetailModel) renderTask(t plan.Task, today plan.Date, selected bool) string {
	check := "[ ]"
	if t.Status == plan.TaskStatusCompleted {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %-44s %s  %dh  %s", check, truncate(t.Title, 44), t.DueDate, t.EstimatedHours, t.Priority)

	switch {
	case selected:
		return styles.SelectedStyle.Render("> " + line)
	case t.Status == plan.TaskStatusCompleted:
		return styles.DoneStyle.Render("  " + line)
	case t.Urgency(today) == plan.UrgencyOverdue:
		return styles.OverdueStyle.Render("  " + line + "  overdue")
	case t.Urgency(today) == plan.UrgencyUrgent:
		return styles.UrgentStyle.Render("  " + line + "  due soon")
	default:
		return "  " + line
	}
}
