// Package entities contains core business entities.
package entities

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// TaskReadyToStart is the initial task state.
	TaskReadyToStart TaskStatus = "Ready to Start"
	// TaskInProgress marks a task being worked on.
	TaskInProgress TaskStatus = "In Progress"
	// TaskWaitingForReview marks a task pending review.
	TaskWaitingForReview TaskStatus = "Waiting for Review"
	// TaskComplete marks a finished task.
	TaskComplete TaskStatus = "Complete"
)

// Valid reports whether the status is a known literal.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskReadyToStart, TaskInProgress, TaskWaitingForReview, TaskComplete:
		return true
	}
	return false
}

// Task is a domain model of a unit of work under a project. AssignedTo
// is a duplicate-free set of user ids. ProjectID is immutable after
// creation.
type Task struct {
	ID          string
	Description string
	Status      TaskStatus
	AssignedTo  []string
	ProjectID   string
}
