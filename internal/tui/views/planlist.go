package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"studyforge/internal/plan"
	"studyforge/internal/store"
	"studyforge/internal/tui/components"
	"studyforge/internal/tui/msgs"
	"studyforge/internal/tui/styles"
)

// statusFilters cycles through the list filter states.
var statusFilters = []string{"", plan.StatusActive, plan.StatusPaused, plan.StatusCompleted}

// PlanListModel is the model for the plan overview.
type PlanListModel struct {
	store    *store.Store
	sessions *store.SessionLog
	cursor   int
	filter   int // index into statusFilters
	width    int
	height   int
}

// NewPlanListModel creates the plan list view.
func NewPlanListModel(st *store.Store, sessions *store.SessionLog) PlanListModel {
	return PlanListModel{store: st, sessions: sessions}
}

// visible returns the plans matching the current filter, in insertion order.
func (m PlanListModel) visible() []plan.Plan {
	status := statusFilters[m.filter]
	if status == "" {
		return m.store.All()
	}
	var out []plan.Plan
	for _, p := range m.store.All() {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Init implements tea.Model.
func (m PlanListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlanListModel) Update(msg tea.Msg) (PlanListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		plans := m.visible()
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", "c":
			return m, func() tea.Msg { return msgs.GoToCreateMsg{} }
		case "f":
			m.filter = (m.filter + 1) % len(statusFilters)
			m.cursor = 0
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(plans)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(plans) {
				selected := plans[m.cursor]
				return m, func() tea.Msg { return msgs.GoToDetailMsg{PlanID: selected.ID} }
			}
		case "d":
			if m.cursor < len(plans) {
				selected := plans[m.cursor]
				if err := m.store.Remove(selected.ID); err != nil {
					return m, nil
				}
				m.sessions.PlanDeleted(selected.ID)
				if m.cursor > 0 {
					m.cursor--
				}
				return m, func() tea.Msg { return msgs.PlanDeletedMsg{PlanID: selected.ID} }
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PlanListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	plans := m.visible()
	var b strings.Builder

	title := "Study Plans"
	if status := statusFilters[m.filter]; status != "" {
		title = fmt.Sprintf("Study Plans (%s)", status)
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	if len(plans) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No plans here yet."))
		b.WriteString("\n\n")
		b.WriteString(styles.SubtleStyle.Render("n: new plan  f: filter  q: quit"))
		return b.String()
	}

	for i, p := range plans {
		bar := components.NewProgress(p.CompletedHours, p.TotalHours, 16)
		line := fmt.Sprintf("%-28s %-8s %-10s %s  %d/%d tasks",
			truncate(p.Title, 28), p.Type, p.Status,
			bar.View(), p.CompletedTaskCount(), len(p.Tasks))

		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("> " + line))
		} else if p.Status == plan.StatusCompleted {
			b.WriteString(styles.DoneStyle.Render("  " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render("enter: open  n: new  f: filter  d: delete  q: quit"))
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
