// Package domain contains application Usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"project-ninja-backend/internal/entities"

	"github.com/google/uuid"
)

// CreateProject creates a project in Onboarding owned by the given
// project manager. Admin only.
func (u *Usecase) CreateProject(ctx context.Context, actor entities.User, name, description, managerID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(actor, entities.OpProjectCreate, authTarget{}); err != nil {
		return nil, err
	}
	if name == "" || description == "" || managerID == "" {
		return nil, fmt.Errorf("%w: name, description and projectManager are required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetUser(ctx, managerID); err != nil {
		return nil, err
	}

	prj, err := u.repo.CreateProject(ctx, entities.Project{
		ID:             uuid.NewString(),
		Name:           name,
		Description:    description,
		Status:         entities.StatusOnboarding,
		ProjectManager: managerID,
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("project created", "project_id", prj.ID, "manager", managerID)
	return prj, nil
}

// Project returns a project by id. Admin view.
func (u *Usecase) Project(ctx context.Context, actor entities.User, id string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	if err := authorize(actor, entities.OpProjectGet, authTarget{}); err != nil {
		return nil, err
	}
	return u.repo.GetProject(ctx, id)
}

// ListProjects returns the actor's scoped project listing. Admin sees
// everything; a project manager sees projects they own; team leads and
// team members see only In Progress projects they lead or belong to.
// Onboarding and Complete projects stay invisible to them on purpose.
func (u *Usecase) ListProjects(ctx context.Context, actor entities.User) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(actor, entities.OpProjectList, authTarget{}); err != nil {
		return nil, err
	}

	switch actor.Role {
	case entities.RoleAdmin:
		return u.repo.ListProjects(ctx)
	case entities.RoleProjectManager:
		return u.repo.ListProjectsByManager(ctx, actor.ID)
	case entities.RoleTeamLead:
		return u.repo.ListProjectsByTeamLead(ctx, actor.ID, entities.StatusInProgress)
	case entities.RoleTeamMember:
		return u.repo.ListProjectsByMember(ctx, actor.ID, entities.StatusInProgress)
	default:
		return nil, fmt.Errorf("%w: role %q has no project listing", entities.ErrForbidden, actor.Role)
	}
}

// DeleteProject removes a project and its tasks. Admin only.
func (u *Usecase) DeleteProject(ctx context.Context, actor entities.User, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	prj, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actor, entities.OpProjectDelete, authTarget{project: prj}); err != nil {
		return err
	}
	return u.repo.DeleteProject(ctx, id)
}

// SetProjectStatus moves a project to any of the three states; there is
// no adjacency constraint between states.
func (u *Usecase) SetProjectStatus(ctx context.Context, actor entities.User, id string, status entities.ProjectStatus) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", entities.ErrInvalidArgument, status)
	}
	prj, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpProjectSetStatus, authTarget{project: prj}); err != nil {
		return nil, err
	}
	return u.repo.SetProjectStatus(ctx, id, status)
}

// SetTeamLead replaces the project's team lead wholesale. The target
// user must exist; their role is not checked.
func (u *Usecase) SetTeamLead(ctx context.Context, actor entities.User, id, userID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" || userID == "" {
		return nil, fmt.Errorf("%w: project id and user id are required", entities.ErrInvalidArgument)
	}
	prj, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpProjectSetTeamLead, authTarget{project: prj}); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.repo.SetTeamLead(ctx, id, userID)
}

// AddTeamMember adds a user to the project roster. The membership check
// here is advisory; the repository insert is the atomic authority.
func (u *Usecase) AddTeamMember(ctx context.Context, actor entities.User, id, userID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" || userID == "" {
		return nil, fmt.Errorf("%w: project id and user id are required", entities.ErrInvalidArgument)
	}
	prj, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpProjectAddMember, authTarget{project: prj}); err != nil {
		return nil, err
	}
	if err := entities.CanAddMember(prj.TeamMembers, userID); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.repo.AddTeamMember(ctx, id, userID)
}

// RemoveTeamMember removes a user from the project roster.
func (u *Usecase) RemoveTeamMember(ctx context.Context, actor entities.User, id, userID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" || userID == "" {
		return nil, fmt.Errorf("%w: project id and user id are required", entities.ErrInvalidArgument)
	}
	prj, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpProjectRemoveMember, authTarget{project: prj}); err != nil {
		return nil, err
	}
	if err := entities.CanRemoveMember(prj.TeamMembers, userID); err != nil {
		return nil, err
	}
	return u.repo.RemoveTeamMember(ctx, id, userID)
}

// ProjectMembers returns everyone on the project: team members first,
// then the team lead, then the project manager.
func (u *Usecase) ProjectMembers(ctx context.Context, actor entities.User, id string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	prj, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, entities.OpProjectListMembers, authTarget{project: prj}); err != nil {
		return nil, err
	}

	ids := append([]string(nil), prj.TeamMembers...)
	if prj.TeamLead != "" {
		ids = append(ids, prj.TeamLead)
	}
	ids = append(ids, prj.ProjectManager)
	return u.repo.ListUsersByIDs(ctx, ids)
}
