package domain

import (
	"context"
	"testing"

	"project-ninja-backend/internal/entities"
	"project-ninja-backend/internal/repository/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// seedUser bypasses the admin-only guard to plant fixture accounts.
func seedUser(t *testing.T, repo *memory.Memory, id, username string, role entities.Role) entities.User {
	t.Helper()

	usr, err := repo.CreateUser(context.Background(), entities.User{
		ID:       id,
		Fullname: username,
		Username: username,
		Role:     role,
	})
	require.NoError(t, err)
	return *usr
}

func TestProjectLifecycleFlow(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(zap.NewNop().Sugar())
	uc := newTestUsecase(repo)

	boss := seedUser(t, repo, "a1", "boss", entities.RoleAdmin)
	pm := seedUser(t, repo, "pm1", "pm", entities.RoleProjectManager)
	tl := seedUser(t, repo, "tl1", "tl", entities.RoleTeamLead)
	dev := seedUser(t, repo, "tm1", "dev", entities.RoleTeamMember)

	prj, err := uc.CreateProject(ctx, boss, "Apollo", "moonshot", pm.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusOnboarding, prj.Status)
	require.Empty(t, prj.TeamLead)

	// Onboarding: the manager staffs the project.
	prj, err = uc.SetTeamLead(ctx, pm, prj.ID, tl.ID)
	require.NoError(t, err)
	require.Equal(t, tl.ID, prj.TeamLead)

	prj, err = uc.AddTeamMember(ctx, pm, prj.ID, dev.ID)
	require.NoError(t, err)
	require.Equal(t, []string{dev.ID}, prj.TeamMembers)

	_, err = uc.AddTeamMember(ctx, pm, prj.ID, dev.ID)
	require.ErrorIs(t, err, entities.ErrAlreadyMember)

	// Before In Progress the lead and member see nothing.
	visible, err := uc.ListProjects(ctx, tl)
	require.NoError(t, err)
	require.Empty(t, visible)

	prj, err = uc.SetProjectStatus(ctx, pm, prj.ID, entities.StatusInProgress)
	require.NoError(t, err)
	require.Equal(t, entities.StatusInProgress, prj.Status)

	visible, err = uc.ListProjects(ctx, tl)
	require.NoError(t, err)
	require.Len(t, visible, 1)

	visible, err = uc.ListProjects(ctx, dev)
	require.NoError(t, err)
	require.Len(t, visible, 1)

	// The lead runs tasks on their project.
	task, err := uc.CreateTask(ctx, tl, "design hull", prj.ID, []string{dev.ID})
	require.NoError(t, err)
	require.Equal(t, entities.TaskReadyToStart, task.Status)
	require.Equal(t, []string{dev.ID}, task.AssignedTo)

	task, err = uc.SetTaskStatus(ctx, dev, task.ID, entities.TaskInProgress)
	require.NoError(t, err)
	require.Equal(t, entities.TaskInProgress, task.Status)

	task, err = uc.SetTaskStatus(ctx, dev, task.ID, entities.TaskWaitingForReview)
	require.NoError(t, err)

	task, err = uc.SetTaskStatus(ctx, tl, task.ID, entities.TaskComplete)
	require.NoError(t, err)
	require.Equal(t, entities.TaskComplete, task.Status)

	tasks, err := uc.ListProjectTasks(ctx, tl, prj.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, task.ID, tasks[0].ID)

	task, err = uc.RemoveAssignee(ctx, tl, task.ID, dev.ID)
	require.NoError(t, err)
	require.Empty(t, task.AssignedTo)

	_, err = uc.RemoveAssignee(ctx, tl, task.ID, dev.ID)
	require.ErrorIs(t, err, entities.ErrNotAMember)

	// Roster listing: members, then lead, then manager.
	roster, err := uc.ProjectMembers(ctx, tl, prj.ID)
	require.NoError(t, err)
	require.Len(t, roster, 3)
	require.Equal(t, dev.ID, roster[0].ID)
	require.Equal(t, tl.ID, roster[1].ID)
	require.Equal(t, pm.ID, roster[2].ID)

	prj, err = uc.SetProjectStatus(ctx, pm, prj.ID, entities.StatusComplete)
	require.NoError(t, err)

	// Complete projects vanish from the member's view again.
	visible, err = uc.ListProjects(ctx, dev)
	require.NoError(t, err)
	require.Empty(t, visible)

	// Only the admin may delete, and a denied attempt changes nothing.
	err = uc.DeleteProject(ctx, pm, prj.ID)
	require.ErrorIs(t, err, entities.ErrForbidden)
	_, err = uc.Project(ctx, boss, prj.ID)
	require.NoError(t, err)

	// Deleting the project takes its tasks with it.
	require.NoError(t, uc.DeleteProject(ctx, boss, prj.ID))
	_, err = uc.Task(ctx, boss, task.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestTeamLeadCannotTouchForeignProject(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(zap.NewNop().Sugar())
	uc := newTestUsecase(repo)

	boss := seedUser(t, repo, "a1", "boss", entities.RoleAdmin)
	pm := seedUser(t, repo, "pm1", "pm", entities.RoleProjectManager)
	tlA := seedUser(t, repo, "tl-a", "lead-a", entities.RoleTeamLead)
	tlB := seedUser(t, repo, "tl-b", "lead-b", entities.RoleTeamLead)

	prj, err := uc.CreateProject(ctx, boss, "Apollo", "moonshot", pm.ID)
	require.NoError(t, err)
	_, err = uc.SetTeamLead(ctx, pm, prj.ID, tlA.ID)
	require.NoError(t, err)

	_, err = uc.CreateTask(ctx, tlB, "sneak in work", prj.ID, nil)
	require.ErrorIs(t, err, entities.ErrForbidden)

	task, err := uc.CreateTask(ctx, tlA, "real work", prj.ID, nil)
	require.NoError(t, err)

	_, err = uc.AddAssignee(ctx, tlB, task.ID, tlB.ID)
	require.ErrorIs(t, err, entities.ErrForbidden)

	err = uc.DeleteTask(ctx, tlB, task.ID)
	require.ErrorIs(t, err, entities.ErrForbidden)

	// Replacing the lead moves authority wholesale.
	_, err = uc.SetTeamLead(ctx, pm, prj.ID, tlB.ID)
	require.NoError(t, err)
	require.NoError(t, uc.DeleteTask(ctx, tlB, task.ID))

	err = uc.DeleteTask(ctx, tlA, task.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestManagerSeesOwnProjectsOnly(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(zap.NewNop().Sugar())
	uc := newTestUsecase(repo)

	boss := seedUser(t, repo, "a1", "boss", entities.RoleAdmin)
	pmA := seedUser(t, repo, "pm-a", "manager-a", entities.RoleProjectManager)
	pmB := seedUser(t, repo, "pm-b", "manager-b", entities.RoleProjectManager)

	_, err := uc.CreateProject(ctx, boss, "Apollo", "moonshot", pmA.ID)
	require.NoError(t, err)
	_, err = uc.CreateProject(ctx, boss, "Borealis", "northern", pmB.ID)
	require.NoError(t, err)

	all, err := uc.ListProjects(ctx, boss)
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := uc.ListProjects(ctx, pmA)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Apollo", mine[0].Name)
}
