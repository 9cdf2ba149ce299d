// Package msgs defines the messages views use to navigate between screens.
package msgs

// GoToListMsg switches to the plan list.
type GoToListMsg struct{}

// GoToCreateMsg switches to the create form.
type GoToCreateMsg struct{}

// GoToDetailMsg opens one plan's schedule.
type GoToDetailMsg struct {
	PlanID string
}

// PlanCreatedMsg reports a successfully generated and saved plan.
type PlanCreatedMsg struct {
	PlanID string
}

// PlanDeletedMsg reports a deleted plan.
type PlanDeletedMsg struct {
	PlanID string
}
