package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"project-ninja-backend/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertProjectQuery = `
INSERT INTO projects(id, name, description, status, project_manager)
VALUES ($1, $2, $3, $4, $5)
`
	selectProjectQuery = `
SELECT id, name, description, status, project_manager, COALESCE(team_lead, '')
FROM projects WHERE id=$1
`
	selectAllProjectsQuery = `
SELECT id, name, description, status, project_manager, COALESCE(team_lead, '')
FROM projects ORDER BY name
`
	selectProjectsByManagerQuery = `
SELECT id, name, description, status, project_manager, COALESCE(team_lead, '')
FROM projects WHERE project_manager=$1 ORDER BY name
`
	selectProjectsByTeamLeadQuery = `
SELECT id, name, description, status, project_manager, COALESCE(team_lead, '')
FROM projects WHERE team_lead=$1 AND status=$2 ORDER BY name
`
	selectProjectsByMemberQuery = `
SELECT p.id, p.name, p.description, p.status, p.project_manager, COALESCE(p.team_lead, '')
FROM projects p
JOIN project_members m ON m.project_id = p.id
WHERE m.user_id=$1 AND p.status=$2 ORDER BY p.name
`
	deleteProjectQuery        = `DELETE FROM projects WHERE id=$1`
	updateProjectStatusQuery  = `UPDATE projects SET status=$2 WHERE id=$1`
	updateProjectLeadQuery    = `UPDATE projects SET team_lead=$2 WHERE id=$1`
	selectProjectMembersQuery = `SELECT user_id FROM project_members WHERE project_id=$1 ORDER BY added_at`
	selectProjectTasksQuery   = `SELECT id FROM tasks WHERE project_id=$1 ORDER BY created_at`
	insertProjectMemberQuery  = `INSERT INTO project_members(project_id, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`
	deleteProjectMemberQuery  = `DELETE FROM project_members WHERE project_id=$1 AND user_id=$2`
)

// CreateProject inserts a project record.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	_, err := p.db.Exec(ctx, insertProjectQuery,
		project.ID, project.Name, project.Description, project.Status, project.ProjectManager)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to insert project", "error", err, "name", project.Name)
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project created", "project_id", project.ID, "manager", project.ProjectManager)
	return p.GetProject(ctx, project.ID)
}

// GetProject fetches a project with its rosters.
func (p *Postgres) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	var prj entities.Project
	err := p.db.QueryRow(ctx, selectProjectQuery, id).
		Scan(&prj.ID, &prj.Name, &prj.Description, &prj.Status, &prj.ProjectManager, &prj.TeamLead)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	if prj.TeamMembers, err = p.readIDs(ctx, selectProjectMembersQuery, id); err != nil {
		return nil, err
	}
	if prj.Tasks, err = p.readIDs(ctx, selectProjectTasksQuery, id); err != nil {
		return nil, err
	}
	return &prj, nil
}

// ListProjects returns all projects with rosters.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return p.listProjects(ctx, selectAllProjectsQuery)
}

// ListProjectsByManager returns projects owned by the manager.
func (p *Postgres) ListProjectsByManager(ctx context.Context, managerID string) ([]entities.Project, error) {
	return p.listProjects(ctx, selectProjectsByManagerQuery, managerID)
}

// ListProjectsByTeamLead returns projects led by the user in the given status.
func (p *Postgres) ListProjectsByTeamLead(ctx context.Context, leadID string, status entities.ProjectStatus) ([]entities.Project, error) {
	return p.listProjects(ctx, selectProjectsByTeamLeadQuery, leadID, status)
}

// ListProjectsByMember returns projects where the user is on the team roster in the given status.
func (p *Postgres) ListProjectsByMember(ctx context.Context, memberID string, status entities.ProjectStatus) ([]entities.Project, error) {
	return p.listProjects(ctx, selectProjectsByMemberQuery, memberID, status)
}

// DeleteProject removes the project; member rows and tasks cascade.
func (p *Postgres) DeleteProject(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete project", "error", err, "project_id", id)
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}

	p.log.Infow("project deleted", "project_id", id)
	return nil
}

// SetProjectStatus updates the status field.
func (p *Postgres) SetProjectStatus(ctx context.Context, id string, status entities.ProjectStatus) (*entities.Project, error) {
	tag, err := p.db.Exec(ctx, updateProjectStatusQuery, id, status)
	if err != nil {
		return nil, fmt.Errorf("set project status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrProjectNotFound
	}

	p.log.Infow("project status updated", "project_id", id, "status", status)
	return p.GetProject(ctx, id)
}

// SetTeamLead replaces the team lead reference wholesale.
func (p *Postgres) SetTeamLead(ctx context.Context, id, userID string) (*entities.Project, error) {
	tag, err := p.db.Exec(ctx, updateProjectLeadQuery, id, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("set team lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrProjectNotFound
	}

	p.log.Infow("team lead assigned", "project_id", id, "team_lead", userID)
	return p.GetProject(ctx, id)
}

// AddTeamMember inserts into the member set. The ON CONFLICT guard makes
// the add atomic: of two concurrent adds for the same user only one row
// lands, and the loser sees the conflict here rather than a lost update.
func (p *Postgres) AddTeamMember(ctx context.Context, id, userID string) (*entities.Project, error) {
	tag, err := p.db.Exec(ctx, insertProjectMemberQuery, id, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, foreignKeyTarget(pgErr, entities.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("add team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrAlreadyMember
	}

	p.log.Infow("team member added", "project_id", id, "user_id", userID)
	return p.GetProject(ctx, id)
}

// RemoveTeamMember deletes from the member set.
func (p *Postgres) RemoveTeamMember(ctx context.Context, id, userID string) (*entities.Project, error) {
	tag, err := p.db.Exec(ctx, deleteProjectMemberQuery, id, userID)
	if err != nil {
		return nil, fmt.Errorf("remove team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrNotAMember
	}

	p.log.Infow("team member removed", "project_id", id, "user_id", userID)
	return p.GetProject(ctx, id)
}

func (p *Postgres) listProjects(ctx context.Context, query string, args ...any) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var prj entities.Project
		if err := rows.Scan(&prj.ID, &prj.Name, &prj.Description, &prj.Status, &prj.ProjectManager, &prj.TeamLead); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, prj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	for i := range projects {
		if projects[i].TeamMembers, err = p.readIDs(ctx, selectProjectMembersQuery, projects[i].ID); err != nil {
			return nil, err
		}
		if projects[i].Tasks, err = p.readIDs(ctx, selectProjectTasksQuery, projects[i].ID); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (p *Postgres) readIDs(ctx context.Context, query string, key string) ([]string, error) {
	rows, err := p.db.Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("select ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ids: %w", err)
	}
	return ids, nil
}

// foreignKeyTarget distinguishes which FK failed on a junction insert.
func foreignKeyTarget(pgErr *pgconn.PgError, fallback error) error {
	if strings.HasSuffix(pgErr.ConstraintName, "user_id_fkey") {
		return entities.ErrUserNotFound
	}
	return fallback
}
