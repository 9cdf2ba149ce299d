// Package tui is the interactive front end: a plan list, a per-plan
// schedule with task toggling, and a guided create form.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"studyforge/internal/store"
	"studyforge/internal/tui/msgs"
	"studyforge/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewPlanList View = iota
	ViewPlanDetail
	ViewPlanCreate
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	store    *store.Store
	sessions *store.SessionLog

	planList   views.PlanListModel
	planDetail views.PlanDetailModel
	planCreate views.PlanCreateModel
}

// Run starts the TUI application against the given store.
func Run(st *store.Store, sessions *store.SessionLog) error {
	p := tea.NewProgram(
		newModel(st, sessions),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func newModel(st *store.Store, sessions *store.SessionLog) Model {
	return Model{
		currentView: ViewPlanList,
		store:       st,
		sessions:    sessions,
		planList:    views.NewPlanListModel(st, sessions),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.planList.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every view tracks its own size.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.planList, cmd = m.planList.Update(msg)
		cmds = append(cmds, cmd)
		m.planDetail, cmd = m.planDetail.Update(msg)
		cmds = append(cmds, cmd)
		m.planCreate, cmd = m.planCreate.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case msgs.GoToListMsg, msgs.PlanDeletedMsg:
		m.currentView = ViewPlanList
		return m, nil

	case msgs.GoToCreateMsg:
		m.planCreate = views.NewPlanCreateModel(m.store, m.sessions)
		m.currentView = ViewPlanCreate
		return m, m.resized(m.planCreate.Init())

	case msgs.GoToDetailMsg:
		m.planDetail = views.NewPlanDetailModel(m.store, m.sessions, msg.PlanID)
		m.currentView = ViewPlanDetail
		return m, m.resized(m.planDetail.Init())

	case msgs.PlanCreatedMsg:
		m.planDetail = views.NewPlanDetailModel(m.store, m.sessions, msg.PlanID)
		m.currentView = ViewPlanDetail
		return m, m.resized(m.planDetail.Init())
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewPlanDetail:
		m.planDetail, cmd = m.planDetail.Update(msg)
	case ViewPlanCreate:
		m.planCreate, cmd = m.planCreate.Update(msg)
	default:
		m.planList, cmd = m.planList.Update(msg)
	}
	return m, cmd
}

// resized replays the current window size to a freshly constructed view so
// it renders immediately.
func (m Model) resized(init tea.Cmd) tea.Cmd {
	size := func() tea.Msg { return tea.WindowSizeMsg{Width: m.width, Height: m.height} }
	return tea.Batch(init, size)
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewPlanDetail:
		return m.planDetail.View()
	case ViewPlanCreate:
		return m.planCreate.View()
	default:
		return m.planList.View()
	}
}
