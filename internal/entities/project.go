// Package entities contains core business entities.
package entities

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	// StatusOnboarding is the initial project state.
	StatusOnboarding ProjectStatus = "Onboarding"
	// StatusInProgress marks an active project.
	StatusInProgress ProjectStatus = "In Progress"
	// StatusComplete marks a finished project.
	StatusComplete ProjectStatus = "Complete"
)

// Valid reports whether the status is a known literal. Any valid status
// is reachable from any other; the enumeration is the whole contract.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusOnboarding, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// Project is a domain model of an organizational project. TeamMembers
// is a duplicate-free set of user ids; TeamLead is a single replaceable
// reference, empty when unassigned. Tasks holds ids of tasks created
// under the project and is derived from task storage on read.
type Project struct {
	ID             string
	Name           string
	Description    string
	Status         ProjectStatus
	ProjectManager string
	TeamLead       string
	TeamMembers    []string
	Tasks          []string
}
