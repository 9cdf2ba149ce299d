package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"studyforge/internal/generator"
	"studyforge/internal/plan"
	"studyforge/internal/store"
	"studyforge/internal/tui/msgs"
	"studyforge/internal/tui/styles"
)

// generateDelay paces the "generating" spinner. Purely cosmetic: the
// schedule is computed instantly when the timer fires.
const generateDelay = 2 * time.Second

// PlanCreateState represents the current state of the creation flow.
type PlanCreateState int

const (
	PlanCreateStateForm       PlanCreateState = iota // user is filling fields
	PlanCreateStateGenerating                        // spinner is running
)

// Form field indices.
const (
	fieldTitle = iota
	fieldSubject
	fieldStart
	fieldEnd
	fieldDailyHours
	fieldWeaknesses
	fieldMethods
	fieldGoals
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Subject",
	"Start date (YYYY-MM-DD)",
	"End date (YYYY-MM-DD)",
	"Daily hours",
	"Weaknesses (comma separated)",
	"Learning methods (comma separated)",
	"Goals",
}

// generateTimerMsg fires when the cosmetic generation delay elapses.
type generateTimerMsg struct{}

// PlanCreateModel drives the guided create form.
type PlanCreateModel struct {
	store    *store.Store
	sessions *store.SessionLog

	state    PlanCreateState
	inputs   [fieldCount]textinput.Model
	focus    int
	planType int // index into planTypes
	spinner  spinner.Model
	errMsg   string

	width  int
	height int
}

var planTypes = []string{plan.TypeExam, plan.TypeProject, plan.TypeSubject}

// NewPlanCreateModel creates the form with sensible defaults.
func NewPlanCreateModel(st *store.Store, sessions *store.SessionLog) PlanCreateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	m := PlanCreateModel{
		store:    st,
		sessions: sessions,
		spinner:  s,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		m.inputs[i] = ti
	}
	m.inputs[fieldDailyHours].SetValue("2")
	m.inputs[fieldDailyHours].CharLimit = 2
	m.inputs[fieldTitle].Focus()

	return m
}

// Init implements tea.Model.
func (m PlanCreateModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PlanCreateModel) Update(msg tea.Msg) (PlanCreateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == PlanCreateStateGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case generateTimerMsg:
		return m.finishGeneration()

	case tea.KeyMsg:
		if m.state == PlanCreateStateGenerating {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			// No abort path once generation begins.
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return msgs.GoToListMsg{} }
		case "left", "right":
			if msg.String() == "left" {
				m.planType = (m.planType + len(planTypes) - 1) % len(planTypes)
			} else {
				m.planType = (m.planType + 1) % len(planTypes)
			}
			return m, nil
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		case "enter":
			if m.focus == fieldCount-1 {
				return m.submit()
			}
			return m.moveFocus(1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m PlanCreateModel) moveFocus(delta int) (PlanCreateModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m, m.inputs[m.focus].Focus()
}

// submit validates the form and starts the paced generation.
func (m PlanCreateModel) submit() (PlanCreateModel, tea.Cmd) {
	form, err := m.form()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if err := form.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.state = PlanCreateStateGenerating
	return m, tea.Batch(
		m.spinner.Tick,
		tea.Tick(generateDelay, func(time.Time) tea.Msg { return generateTimerMsg{} }),
	)
}

// finishGeneration runs the generator and saves the plan.
func (m PlanCreateModel) finishGeneration() (PlanCreateModel, tea.Cmd) {
	form, err := m.form()
	if err != nil {
		m.state = PlanCreateStateForm
		m.errMsg = err.Error()
		return m, nil
	}

	p := generator.Generate(form)
	if err := m.store.Append(p); err != nil {
		m.state = PlanCreateStateForm
		m.errMsg = err.Error()
		return m, nil
	}
	m.sessions.PlanCreated(p.ID)

	return m, func() tea.Msg { return msgs.PlanCreatedMsg{PlanID: p.ID} }
}

// form assembles FormData from the current field values.
func (m PlanCreateModel) form() (generator.FormData, error) {
	form := generator.FormData{
		Title:           strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Type:            planTypes[m.planType],
		Subject:         strings.TrimSpace(m.inputs[fieldSubject].Value()),
		Weaknesses:      splitList(m.inputs[fieldWeaknesses].Value()),
		LearningMethods: splitList(m.inputs[fieldMethods].Value()),
		Goals:           strings.TrimSpace(m.inputs[fieldGoals].Value()),
	}

	if v := strings.TrimSpace(m.inputs[fieldStart].Value()); v != "" {
		start, err := plan.ParseDate(v)
		if err != nil {
			return form, err
		}
		form.StartDate = start
	}
	if v := strings.TrimSpace(m.inputs[fieldEnd].Value()); v != "" {
		end, err := plan.ParseDate(v)
		if err != nil {
			return form, err
		}
		form.EndDate = end
	}

	hours := strings.TrimSpace(m.inputs[fieldDailyHours].Value())
	if hours != "" {
		n, err := strconv.Atoi(hours)
		if err != nil {
			return form, fmt.Errorf("daily hours must be a number, got %q", hours)
		}
		form.DailyHours = n
	}

	return form, nil
}

// splitList parses a comma-separated field into trimmed non-empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// View implements tea.Model.
func (m PlanCreateModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.state == PlanCreateStateGenerating {
		return styles.BoxStyle.Render(fmt.Sprintf("%s Generating your study plan...", m.spinner.View()))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("New Study Plan"))
	b.WriteString("\n\n")

	b.WriteString("  Type: ")
	for i, t := range planTypes {
		if i == m.planType {
			b.WriteString(styles.SelectedStyle.Render("[" + t + "]"))
		} else {
			b.WriteString(styles.SubtleStyle.Render(" " + t + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString(styles.SubtleStyle.Render("  (←/→ to change)"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := fieldLabels[i]
		if i == m.focus {
			b.WriteString(styles.SelectedStyle.Render(fmt.Sprintf("  %s:", label)))
		} else {
			b.WriteString(fmt.Sprintf("  %s:", label))
		}
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, style := range generator.LearningStyles {
		b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("  %-12s %s", style, strings.Join(generator.LearningMethods[style], ", "))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(styles.ErrorStyle.Render("  " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(styles.SubtleStyle.Render("  tab: next field  enter on last field: generate  esc: cancel"))
	return b.String()
}
