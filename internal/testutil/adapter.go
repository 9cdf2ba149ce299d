// Package testutil provides test doubles shared across packages.
package testutil

import "studyforge/internal/plan"

// MemoryAdapter is an in-memory store adapter recording every save.
type MemoryAdapter struct {
	Plans     []plan.Plan
	SaveCount int
	LoadErr   error
	SaveErr   error
}

// Load implements store.Adapter.
func (a *MemoryAdapter) Load() ([]plan.Plan, error) {
	if a.LoadErr != nil {
		return nil, a.LoadErr
	}
	return a.Plans, nil
}

// Save implements store.Adapter.
func (a *MemoryAdapter) Save(plans []plan.Plan) error {
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.Plans = append([]plan.Plan(nil), plans...)
	a.SaveCount++
	return nil
}
