package entities

import "fmt"

// Membership rules for roster fields (project team members, task
// assignees). A roster is a set: adding a present id or removing an
// absent one is a conflict, and both checks are pure functions of the
// roster passed in. Team lead assignment is a wholesale replace and
// deliberately bypasses these rules.

// CanAddMember reports whether id may join the roster.
func CanAddMember(roster []string, id string) error {
	for _, m := range roster {
		if m == id {
			return fmt.Errorf("%w: %s", ErrAlreadyMember, id)
		}
	}
	return nil
}

// CanRemoveMember reports whether id may leave the roster.
func CanRemoveMember(roster []string, id string) error {
	for _, m := range roster {
		if m == id {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotAMember, id)
}
