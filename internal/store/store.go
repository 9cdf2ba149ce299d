// Package store holds the plan collection and persists it through an
// injected adapter. The collection keeps insertion order and every mutation
// writes the whole collection back out.
package store

import (
	"errors"
	"fmt"
	"strings"

	"studyforge/internal/plan"
)

// ErrNotFound is returned when no plan matches the given reference.
var ErrNotFound = errors.New("plan not found")

// Adapter loads and saves the whole plan collection. Load returns an empty
// collection when no data exists or the stored data is malformed; errors are
// reserved for real I/O failures.
type Adapter interface {
	Load() ([]plan.Plan, error)
	Save(plans []plan.Plan) error
}

// Store is the in-memory plan collection backed by an Adapter.
type Store struct {
	adapter Adapter
	plans   []plan.Plan
}

// Open loads the collection once through the adapter.
func Open(adapter Adapter) (*Store, error) {
	plans, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	return &Store{adapter: adapter, plans: plans}, nil
}

// All returns the plans in insertion order. Callers must treat the result as
// read-only; mutations go through the Store methods.
func (s *Store) All() []plan.Plan {
	return s.plans
}

// Len returns the number of stored plans.
func (s *Store) Len() int {
	return len(s.plans)
}

// Get returns the plan with the given ID.
func (s *Store) Get(id string) (plan.Plan, error) {
	for _, p := range s.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return plan.Plan{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Find resolves a user-supplied reference to a single plan: an exact ID, an
// ID prefix, or a case-insensitive title match. Ambiguous references are
// rejected.
func (s *Store) Find(ref string) (plan.Plan, error) {
	var matches []plan.Plan
	for _, p := range s.plans {
		if p.ID == ref {
			return p, nil
		}
		if strings.HasPrefix(p.ID, ref) || strings.EqualFold(p.Title, ref) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return plan.Plan{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if len(matches) > 1 {
		return plan.Plan{}, fmt.Errorf("reference %q matches %d plans, use the full ID", ref, len(matches))
	}
	return matches[0], nil
}

// Append adds a plan to the end of the collection and persists.
func (s *Store) Append(p plan.Plan) error {
	s.plans = append(s.plans, p)
	return s.save()
}

// Update replaces the plan with a matching ID, preserving the order of all
// others. Updating an absent ID is a no-op.
func (s *Store) Update(p plan.Plan) error {
	for i := range s.plans {
		if s.plans[i].ID == p.ID {
			s.plans[i] = p
			return s.save()
		}
	}
	return nil
}

// Remove deletes the plan with the given ID. Removing an absent ID is a
// no-op that leaves the persisted collection untouched.
func (s *Store) Remove(id string) error {
	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// ToggleTask flips a task between pending and completed, recomputes the
// plan's completed hours, and persists. Returns the updated plan.
func (s *Store) ToggleTask(planID, taskID string) (plan.Plan, error) {
	for i := range s.plans {
		if s.plans[i].ID != planID {
			continue
		}
		if !s.plans[i].ToggleTask(taskID) {
			return plan.Plan{}, fmt.Errorf("task not found: %s", taskID)
		}
		if err := s.save(); err != nil {
			return plan.Plan{}, err
		}
		return s.plans[i], nil
	}
	return plan.Plan{}, fmt.Errorf("%w: %s", ErrNotFound, planID)
}

// SetStatus changes a plan's status and persists. Returns the updated plan.
func (s *Store) SetStatus(planID, status string) (plan.Plan, error) {
	if !plan.ValidStatus(status) {
		return plan.Plan{}, fmt.Errorf("invalid plan status: %s", status)
	}
	for i := range s.plans {
		if s.plans[i].ID == planID {
			s.plans[i].Status = status
			if err := s.save(); err != nil {
				return plan.Plan{}, err
			}
			return s.plans[i], nil
		}
	}
	return plan.Plan{}, fmt.Errorf("%w: %s", ErrNotFound, planID)
}

func (s *Store) save() error {
	if err := s.adapter.Save(s.plans); err != nil {
		return fmt.Errorf("failed to save plans: %w", err)
	}
	return nil
}
