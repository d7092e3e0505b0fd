// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrWrongCredentials signals a failed login attempt.
	ErrWrongCredentials = errors.New("wrong credentials")
	// ErrForbidden is returned when an authenticated actor is not permitted.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals username conflict.
	ErrUserExists = errors.New("user exists")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAlreadyMember signals a roster add of an id already present.
	ErrAlreadyMember = errors.New("already a member")
	// ErrNotAMember signals a roster remove of an id not present.
	ErrNotAMember = errors.New("not a member")
)
