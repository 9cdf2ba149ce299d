package views

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"studyforge/internal/plan"
	"studyforge/internal/store"
	"studyforge/internal/testutil"
)

func createFixture(t *testing.T) PlanCreateModel {
	t.Helper()
	st, err := store.Open(&testutil.MemoryAdapter{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	sessions := store.NewSessionLog(filepath.Join(t.TempDir(), "sessions.log"))
	m := NewPlanCreateModel(st, sessions)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Algebra, Calculus", []string{"Algebra", "Calculus"}},
		{"  Algebra ,, Calculus  ", []string{"Algebra", "Calculus"}},
		{"single", []string{"single"}},
		{"", nil},
		{" , , ", nil},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := splitList(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("splitList(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("splitList(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestCreateFormAssemblesFormData(t *testing.T) {
	m := createFixture(t)
	m.inputs[fieldTitle].SetValue("Calculus Final")
	m.inputs[fieldSubject].SetValue("Mathematics")
	m.inputs[fieldStart].SetValue("2025-01-01")
	m.inputs[fieldEnd].SetValue("2025-04-11")
	m.inputs[fieldDailyHours].SetValue("3")
	m.inputs[fieldWeaknesses].SetValue("Calculus, Statistics")
	m.inputs[fieldMethods].SetValue("Flashcards")
	m.inputs[fieldGoals].SetValue("Pass with an A")

	form, err := m.form()
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}

	if form.Title != "Calculus Final" || form.Subject != "Mathematics" {
		t.Error("text fields not carried into form")
	}
	if form.Type != plan.TypeExam {
		t.Errorf("default type = %q, want exam", form.Type)
	}
	if form.StartDate.String() != "2025-01-01" || form.EndDate.String() != "2025-04-11" {
		t.Errorf("dates = %s / %s", form.StartDate, form.EndDate)
	}
	if form.DailyHours != 3 {
		t.Errorf("dailyHours = %d, want 3", form.DailyHours)
	}
	if len(form.Weaknesses) != 2 || form.Weaknesses[0] != "Calculus" {
		t.Errorf("weaknesses = %v", form.Weaknesses)
	}
	if err := form.Validate(); err != nil {
		t.Errorf("assembled form does not validate: %v", err)
	}
}

func TestCreateFormRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*PlanCreateModel)
	}{
		{"bad date", func(m *PlanCreateModel) {
			m.inputs[fieldStart].SetValue("January 1st")
		}},
		{"bad daily hours", func(m *PlanCreateModel) {
			m.inputs[fieldDailyHours].SetValue("lots")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := createFixture(t)
			tc.setup(&m)
			if _, err := m.form(); err == nil {
				t.Error("expected error from form()")
			}
		})
	}
}

func TestCreateSubmitValidatesBeforeGenerating(t *testing.T) {
	m := createFixture(t) // empty form: title missing

	m, cmd := m.submit()
	if m.state != PlanCreateStateForm {
		t.Errorf("state = %v, want form (validation failed)", m.state)
	}
	if m.errMsg == "" {
		t.Error("no error message after invalid submit")
	}
	if cmd != nil {
		t.Error("invalid submit still scheduled generation")
	}
}

func TestCreateSubmitRejectsInvertedDates(t *testing.T) {
	m := createFixture(t)
	m.inputs[fieldTitle].SetValue("Backwards")
	m.inputs[fieldSubject].SetValue("Mathematics")
	m.inputs[fieldStart].SetValue("2025-04-11")
	m.inputs[fieldEnd].SetValue("2025-01-01")

	m, _ = m.submit()
	if m.state != PlanCreateStateForm {
		t.Error("inverted dates passed boundary validation")
	}
	if !strings.Contains(m.errMsg, "before") {
		t.Errorf("errMsg = %q, want date-range error", m.errMsg)
	}
}

func TestCreateFinishGenerationSavesPlan(t *testing.T) {
	m := createFixture(t)
	m.inputs[fieldTitle].SetValue("Calculus Final")
	m.inputs[fieldSubject].SetValue("Mathematics")
	m.inputs[fieldStart].SetValue("2025-01-01")
	m.inputs[fieldEnd].SetValue("2025-04-11")

	m, cmd := m.submit()
	if m.state != PlanCreateStateGenerating {
		t.Fatalf("state = %v, want generating", m.state)
	}
	if cmd == nil {
		t.Fatal("submit scheduled no command")
	}

	m, cmd = m.finishGeneration()
	if cmd == nil {
		t.Fatal("finishGeneration produced no command")
	}
	if m.store.Len() != 1 {
		t.Fatalf("store has %d plans, want 1", m.store.Len())
	}

	saved := m.store.All()[0]
	if saved.Title != "Calculus Final" || len(saved.Tasks) == 0 {
		t.Errorf("saved plan = %+v", saved)
	}
}
