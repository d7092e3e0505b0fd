// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"project-ninja-backend/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	// ListUsersByIDs resolves users preserving the order of the given ids.
	ListUsersByIDs(ctx context.Context, ids []string) ([]entities.User, error)
}

// ProjectInterface exposes project-related operations. Roster mutations
// are atomic set operations: the storage statement itself rejects a
// duplicate add or an absent remove, so concurrent requests cannot both
// pass a stale membership check and both win.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, id string) (*entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	ListProjectsByManager(ctx context.Context, managerID string) ([]entities.Project, error)
	ListProjectsByTeamLead(ctx context.Context, leadID string, status entities.ProjectStatus) ([]entities.Project, error)
	ListProjectsByMember(ctx context.Context, memberID string, status entities.ProjectStatus) ([]entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
	SetProjectStatus(ctx context.Context, id string, status entities.ProjectStatus) (*entities.Project, error)
	SetTeamLead(ctx context.Context, id, userID string) (*entities.Project, error)
	AddTeamMember(ctx context.Context, id, userID string) (*entities.Project, error)
	RemoveTeamMember(ctx context.Context, id, userID string) (*entities.Project, error)
}

// TaskInterface exposes task-related operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	SetTaskStatus(ctx context.Context, id string, status entities.TaskStatus) (*entities.Task, error)
	AddAssignee(ctx context.Context, id, userID string) (*entities.Task, error)
	RemoveAssignee(ctx context.Context, id, userID string) (*entities.Task, error)
}
