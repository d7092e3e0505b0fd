package usecase

import (
	"context"

	"project-ninja-backend/internal/entities"
)

// AuthUsecaseInterface abstracts login for the delivery layer.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, username, password string) (*entities.User, string, error)
}

// UserUsecaseInterface abstracts user-related operations.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, actor entities.User, fullname, username, password string, role entities.Role) (*entities.User, error)
	ListUsers(ctx context.Context, actor entities.User) ([]entities.User, error)
	User(ctx context.Context, actor entities.User, id string) (*entities.User, error)
}

// ProjectUsecaseInterface abstracts project-related operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, actor entities.User, name, description, managerID string) (*entities.Project, error)
	Project(ctx context.Context, actor entities.User, id string) (*entities.Project, error)
	ListProjects(ctx context.Context, actor entities.User) ([]entities.Project, error)
	DeleteProject(ctx context.Context, actor entities.User, id string) error
	SetProjectStatus(ctx context.Context, actor entities.User, id string, status entities.ProjectStatus) (*entities.Project, error)
	SetTeamLead(ctx context.Context, actor entities.User, id, userID string) (*entities.Project, error)
	AddTeamMember(ctx context.Context, actor entities.User, id, userID string) (*entities.Project, error)
	RemoveTeamMember(ctx context.Context, actor entities.User, id, userID string) (*entities.Project, error)
	ProjectMembers(ctx context.Context, actor entities.User, id string) ([]entities.User, error)
}

// TaskUsecaseInterface abstracts task-related operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, actor entities.User, description, projectID string, assignedTo []string) (*entities.Task, error)
	Task(ctx context.Context, actor entities.User, id string) (*entities.Task, error)
	ListTasks(ctx context.Context, actor entities.User) ([]entities.Task, error)
	ListProjectTasks(ctx context.Context, actor entities.User, projectID string) ([]entities.Task, error)
	DeleteTask(ctx context.Context, actor entities.User, id string) error
	SetTaskStatus(ctx context.Context, actor entities.User, id string, status entities.TaskStatus) (*entities.Task, error)
	AddAssignee(ctx context.Context, actor entities.User, id, userID string) (*entities.Task, error)
	RemoveAssignee(ctx context.Context, actor entities.User, id, userID string) (*entities.Task, error)
}
