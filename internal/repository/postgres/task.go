package postgres

import (
	"context"
	"errors"
	"fmt"

	"project-ninja-backend/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertTaskQuery = `
INSERT INTO tasks(id, description, status, project_id)
VALUES ($1, $2, $3, $4)
`
	selectTaskQuery           = `SELECT id, description, status, project_id FROM tasks WHERE id=$1`
	selectAllTasksQuery       = `SELECT id, description, status, project_id FROM tasks ORDER BY created_at`
	selectTasksByProjectQuery = `SELECT id, description, status, project_id FROM tasks WHERE project_id=$1 ORDER BY created_at`
	deleteTaskQuery           = `DELETE FROM tasks WHERE id=$1`
	updateTaskStatusQuery     = `UPDATE tasks SET status=$2 WHERE id=$1`
	selectAssigneesQuery      = `SELECT user_id FROM task_assignees WHERE task_id=$1 ORDER BY added_at`
	insertAssigneeQuery       = `INSERT INTO task_assignees(task_id, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`
	deleteAssigneeQuery       = `DELETE FROM task_assignees WHERE task_id=$1 AND user_id=$2`
)

// CreateTask inserts a task and its initial assignee set in one transaction.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertTaskQuery, task.ID, task.Description, task.Status, task.ProjectID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrProjectNotFound
		}
		p.log.Errorw("failed to insert task", "error", err, "task_id", task.ID)
		return nil, fmt.Errorf("insert task: %w", err)
	}

	for _, userID := range task.AssignedTo {
		if _, err := tx.Exec(ctx, insertAssigneeQuery, task.ID, userID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return nil, entities.ErrUserNotFound
			}
			return nil, fmt.Errorf("insert assignee: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID)
	return p.GetTask(ctx, task.ID)
}

// GetTask fetches a task with its assignee roster.
func (p *Postgres) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	var t entities.Task
	err := p.db.QueryRow(ctx, selectTaskQuery, id).
		Scan(&t.ID, &t.Description, &t.Status, &t.ProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	if t.AssignedTo, err = p.readIDs(ctx, selectAssigneesQuery, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns all tasks.
func (p *Postgres) ListTasks(ctx context.Context) ([]entities.Task, error) {
	return p.listTasks(ctx, selectAllTasksQuery)
}

// ListTasksByProject returns tasks under a project.
func (p *Postgres) ListTasksByProject(ctx context.Context, projectID string) ([]entities.Task, error) {
	return p.listTasks(ctx, selectTasksByProjectQuery, projectID)
}

// DeleteTask removes the task; assignee rows cascade.
func (p *Postgres) DeleteTask(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete task", "error", err, "task_id", id)
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}

	p.log.Infow("task deleted", "task_id", id)
	return nil
}

// SetTaskStatus updates the status field.
func (p *Postgres) SetTaskStatus(ctx context.Context, id string, status entities.TaskStatus) (*entities.Task, error) {
	tag, err := p.db.Exec(ctx, updateTaskStatusQuery, id, status)
	if err != nil {
		return nil, fmt.Errorf("set task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrTaskNotFound
	}

	p.log.Infow("task status updated", "task_id", id, "status", status)
	return p.GetTask(ctx, id)
}

// AddAssignee inserts into the assignee set atomically.
func (p *Postgres) AddAssignee(ctx context.Context, id, userID string) (*entities.Task, error) {
	tag, err := p.db.Exec(ctx, insertAssigneeQuery, id, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, foreignKeyTarget(pgErr, entities.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("add assignee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrAlreadyMember
	}

	p.log.Infow("assignee added", "task_id", id, "user_id", userID)
	return p.GetTask(ctx, id)
}

// RemoveAssignee deletes from the assignee set.
func (p *Postgres) RemoveAssignee(ctx context.Context, id, userID string) (*entities.Task, error) {
	tag, err := p.db.Exec(ctx, deleteAssigneeQuery, id, userID)
	if err != nil {
		return nil, fmt.Errorf("remove assignee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrNotAMember
	}

	p.log.Infow("assignee removed", "task_id", id, "user_id", userID)
	return p.GetTask(ctx, id)
}

func (p *Postgres) listTasks(ctx context.Context, query string, args ...any) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		var t entities.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.Status, &t.ProjectID); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].AssignedTo, err = p.readIDs(ctx, selectAssigneesQuery, tasks[i].ID); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}
