package store_test

import (
	"errors"
	"testing"
	"time"

	"studyforge/internal/plan"
	"studyforge/internal/store"
	"studyforge/internal/testutil"
)

func testPlan(id, title string) plan.Plan {
	return plan.Plan{
		ID:         id,
		Title:      title,
		Type:       plan.TypeSubject,
		Subject:    "Mathematics",
		StartDate:  plan.NewDate(2025, time.January, 1),
		EndDate:    plan.NewDate(2025, time.January, 22),
		TotalHours: 42,
		Status:     plan.StatusActive,
		Tasks: []plan.Task{
			{ID: id + "-t1", Title: "Study Algebra", EstimatedHours: 6, Status: plan.TaskStatusPending},
			{ID: id + "-t2", Title: "Practice Algebra", EstimatedHours: 4, Status: plan.TaskStatusPending},
		},
	}
}

func openWith(t *testing.T, plans ...plan.Plan) (*store.Store, *testutil.MemoryAdapter) {
	t.Helper()
	adapter := &testutil.MemoryAdapter{Plans: plans}
	st, err := store.Open(adapter)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return st, adapter
}

func TestAppendPersists(t *testing.T) {
	st, adapter := openWith(t)

	if err := st.Append(testPlan("p1", "First")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if adapter.SaveCount != 1 {
		t.Errorf("save count = %d, want 1", adapter.SaveCount)
	}
	if len(adapter.Plans) != 1 || adapter.Plans[0].ID != "p1" {
		t.Errorf("persisted collection = %v", adapter.Plans)
	}
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	st, _ := openWith(t)
	for _, id := range []string{"p1", "p2", "p3"} {
		if err := st.Append(testPlan(id, id)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	all := st.All()
	for i, want := range []string{"p1", "p2", "p3"} {
		if all[i].ID != want {
			t.Errorf("all[%d] = %s, want %s", i, all[i].ID, want)
		}
	}
}

func TestUpdate(t *testing.T) {
	t.Run("replaces exactly one record preserving order", func(t *testing.T) {
		st, adapter := openWith(t, testPlan("p1", "First"), testPlan("p2", "Second"), testPlan("p3", "Third"))

		updated := testPlan("p2", "Renamed")
		if err := st.Update(updated); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		all := st.All()
		if all[0].ID != "p1" || all[1].ID != "p2" || all[2].ID != "p3" {
			t.Error("update disturbed collection order")
		}
		if all[1].Title != "Renamed" {
			t.Errorf("title = %q, want Renamed", all[1].Title)
		}
		if adapter.SaveCount != 1 {
			t.Errorf("save count = %d, want 1", adapter.SaveCount)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		st, adapter := openWith(t, testPlan("p1", "First"))

		if err := st.Update(testPlan("ghost", "Ghost")); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if adapter.SaveCount != 0 {
			t.Errorf("no-op update persisted: save count = %d", adapter.SaveCount)
		}
		if st.Len() != 1 {
			t.Errorf("collection size changed: %d", st.Len())
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		st, adapter := openWith(t, testPlan("p1", "First"), testPlan("p2", "Second"))

		if err := st.Remove("p1"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if st.Len() != 1 || st.All()[0].ID != "p2" {
			t.Errorf("collection after remove = %v", st.All())
		}
		if adapter.SaveCount != 1 {
			t.Errorf("save count = %d, want 1", adapter.SaveCount)
		}
	})

	t.Run("absent id is a no-op that does not persist", func(t *testing.T) {
		st, adapter := openWith(t, testPlan("p1", "First"))

		if err := st.Remove("ghost"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if st.Len() != 1 {
			t.Errorf("collection size changed: %d", st.Len())
		}
		if adapter.SaveCount != 0 {
			t.Errorf("no-op remove persisted: save count = %d", adapter.SaveCount)
		}
	})
}

func TestToggleTask(t *testing.T) {
	st, adapter := openWith(t, testPlan("p1", "First"))

	updated, err := st.ToggleTask("p1", "p1-t1")
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}

	if updated.CompletedHours != 6 {
		t.Errorf("completedHours = %d, want 6", updated.CompletedHours)
	}
	if task := updated.Task("p1-t1"); task.Status != plan.TaskStatusCompleted {
		t.Errorf("task status = %q, want completed", task.Status)
	}
	if adapter.SaveCount != 1 {
		t.Errorf("save count = %d, want 1", adapter.SaveCount)
	}

	// Toggle back.
	updated, err = st.ToggleTask("p1", "p1-t1")
	if err != nil {
		t.Fatalf("second ToggleTask failed: %v", err)
	}
	if updated.CompletedHours != 0 {
		t.Errorf("completedHours after undo = %d, want 0", updated.CompletedHours)
	}

	t.Run("unknown plan", func(t *testing.T) {
		if _, err := st.ToggleTask("ghost", "p1-t1"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		if _, err := st.ToggleTask("p1", "ghost"); err == nil {
			t.Error("expected error for unknown task")
		}
	})
}

func TestSetStatus(t *testing.T) {
	st, _ := openWith(t, testPlan("p1", "First"))

	updated, err := st.SetStatus("p1", plan.StatusPaused)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if updated.Status != plan.StatusPaused {
		t.Errorf("status = %q, want paused", updated.Status)
	}

	if _, err := st.SetStatus("p1", "hibernating"); err == nil {
		t.Error("expected error for invalid status")
	}
	if _, err := st.SetStatus("ghost", plan.StatusActive); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFind(t *testing.T) {
	st, _ := openWith(t,
		testPlan("abc123", "Algebra Review"),
		testPlan("abd456", "History Project"),
	)

	tests := []struct {
		name    string
		ref     string
		wantID  string
		wantErr bool
	}{
		{"exact id", "abc123", "abc123", false},
		{"id prefix", "abc", "abc123", false},
		{"title case-insensitive", "algebra review", "abc123", false},
		{"ambiguous prefix", "ab", "", true},
		{"no match", "zzz", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := st.Find(tc.ref)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Find(%q) expected error, got %v", tc.ref, p.ID)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find(%q) failed: %v", tc.ref, err)
			}
			if p.ID != tc.wantID {
				t.Errorf("Find(%q) = %s, want %s", tc.ref, p.ID, tc.wantID)
			}
		})
	}
}
