// Package domain contains application Usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"

	"project-ninja-backend/internal/entities"

	"github.com/google/uuid"
)

// CreateTask creates a task under a project, optionally with an initial
// assignee set. The actor must lead the target project.
func (u *Usecase) CreateTask(ctx context.Context, actor entities.User, description, projectID string, assignedTo []string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if description == "" || projectID == "" {
		return nil, fmt.Errorf("%w: description and projectId are required", entities.ErrInvalidArgument)
	}
	prj, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpTaskCreate, authTarget{project: prj}); err != nil {
		return nil, err
	}

	task, err := u.repo.CreateTask(ctx, entities.Task{
		ID:          uuid.NewString(),
		Description: description,
		Status:      entities.TaskReadyToStart,
		AssignedTo:  assignedTo,
		ProjectID:   projectID,
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("task created", "task_id", task.ID, "project_id", projectID)
	return task, nil
}

// Task returns a task by id. Open to any authenticated user.
func (u *Usecase) Task(ctx context.Context, actor entities.User, id string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	if err := authorize(actor, entities.OpTaskGet, authTarget{}); err != nil {
		return nil, err
	}
	return u.repo.GetTask(ctx, id)
}

// ListTasks returns all tasks. Open to any authenticated user.
func (u *Usecase) ListTasks(ctx context.Context, actor entities.User) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(actor, entities.OpTaskList, authTarget{}); err != nil {
		return nil, err
	}
	return u.repo.ListTasks(ctx)
}

// ListProjectTasks returns tasks under a project.
func (u *Usecase) ListProjectTasks(ctx context.Context, actor entities.User, projectID string) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	if err := authorize(actor, entities.OpTaskList, authTarget{}); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return u.repo.ListTasksByProject(ctx, projectID)
}

// DeleteTask removes a task. The actor must lead the task's project.
func (u *Usecase) DeleteTask(ctx context.Context, actor entities.User, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	task, prj, err := u.taskWithProject(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actor, entities.OpTaskDelete, authTarget{project: prj, task: task}); err != nil {
		return err
	}
	return u.repo.DeleteTask(ctx, id)
}

// SetTaskStatus moves a task to any of the four states. Open to any
// authenticated user; there is no adjacency constraint between states.
func (u *Usecase) SetTaskStatus(ctx context.Context, actor entities.User, id string, status entities.TaskStatus) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown task status %q", entities.ErrInvalidArgument, status)
	}
	task, err := u.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpTaskSetStatus, authTarget{task: task}); err != nil {
		return nil, err
	}
	return u.repo.SetTaskStatus(ctx, id, status)
}

// AddAssignee adds a user to the task roster. The actor must lead the
// task's project; the repository insert is the atomic authority.
func (u *Usecase) AddAssignee(ctx context.Context, actor entities.User, id, userID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" || userID == "" {
		return nil, fmt.Errorf("%w: task id and user id are required", entities.ErrInvalidArgument)
	}
	task, prj, err := u.taskWithProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpTaskAddAssignee, authTarget{project: prj, task: task}); err != nil {
		return nil, err
	}
	if err := entities.CanAddMember(task.AssignedTo, userID); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.repo.AddAssignee(ctx, id, userID)
}

// RemoveAssignee removes a user from the task roster.
func (u *Usecase) RemoveAssignee(ctx context.Context, actor entities.User, id, userID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" || userID == "" {
		return nil, fmt.Errorf("%w: task id and user id are required", entities.ErrInvalidArgument)
	}
	task, prj, err := u.taskWithProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpTaskRemoveAssignee, authTarget{project: prj, task: task}); err != nil {
		return nil, err
	}
	if err := entities.CanRemoveMember(task.AssignedTo, userID); err != nil {
		return nil, err
	}
	return u.repo.RemoveAssignee(ctx, id, userID)
}

// taskWithProject loads a task and its owning project. The project load
// can only fail on an orphaned record, reported as project-not-found.
func (u *Usecase) taskWithProject(ctx context.Context, id string) (*entities.Task, *entities.Project, error) {
	task, err := u.repo.GetTask(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	prj, err := u.repo.GetProject(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return task, prj, nil
}
