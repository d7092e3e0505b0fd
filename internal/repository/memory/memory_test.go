package memory

import (
	"context"
	"testing"

	"project-ninja-backend/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) *Memory {
	t.Helper()
	return New(zap.NewNop().Sugar())
}

func TestUserUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateUser(ctx, entities.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{ID: "u2", Username: "alice"})
	require.ErrorIs(t, err, entities.ErrUserExists)

	usr, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", usr.ID)

	_, err = repo.GetUser(ctx, "ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestListUsersByIDsPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for _, id := range []string{"u1", "u2", "u3"} {
		_, err := repo.CreateUser(ctx, entities.User{ID: id, Username: id})
		require.NoError(t, err)
	}

	users, err := repo.ListUsersByIDs(ctx, []string{"u3", "ghost", "u1"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "u3", users[0].ID)
	require.Equal(t, "u1", users[1].ID)
}

func TestRosterMutationsAreSets(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateUser(ctx, entities.User{ID: "pm1", Username: "pm"})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, entities.User{ID: "tm1", Username: "tm"})
	require.NoError(t, err)

	_, err = repo.CreateProject(ctx, entities.Project{ID: "p1", Name: "Apollo", ProjectManager: "pm1"})
	require.NoError(t, err)

	prj, err := repo.AddTeamMember(ctx, "p1", "tm1")
	require.NoError(t, err)
	require.Equal(t, []string{"tm1"}, prj.TeamMembers)

	_, err = repo.AddTeamMember(ctx, "p1", "tm1")
	require.ErrorIs(t, err, entities.ErrAlreadyMember)

	_, err = repo.AddTeamMember(ctx, "p1", "ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	prj, err = repo.RemoveTeamMember(ctx, "p1", "tm1")
	require.NoError(t, err)
	require.Empty(t, prj.TeamMembers)

	_, err = repo.RemoveTeamMember(ctx, "p1", "tm1")
	require.ErrorIs(t, err, entities.ErrNotAMember)
}

func TestProjectTaskRosterIsDerived(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateUser(ctx, entities.User{ID: "pm1", Username: "pm"})
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, entities.Project{ID: "p1", Name: "Apollo", ProjectManager: "pm1"})
	require.NoError(t, err)

	_, err = repo.CreateTask(ctx, entities.Task{ID: "t1", Description: "one", ProjectID: "p1"})
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, entities.Task{ID: "t2", Description: "two", ProjectID: "p1"})
	require.NoError(t, err)

	prj, err := repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"t1", "t2"}, prj.Tasks)

	// Dropping a task updates the derived roster on the next read.
	require.NoError(t, repo.DeleteTask(ctx, "t1"))
	prj, err = repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []string{"t2"}, prj.Tasks)
}

func TestDeleteProjectCascades(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateUser(ctx, entities.User{ID: "pm1", Username: "pm"})
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, entities.Project{ID: "p1", Name: "Apollo", ProjectManager: "pm1"})
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, entities.Task{ID: "t1", Description: "one", ProjectID: "p1"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProject(ctx, "p1"))

	_, err = repo.GetProject(ctx, "p1")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
	_, err = repo.GetTask(ctx, "t1")
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestScopedProjectListings(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for _, id := range []string{"pm1", "tl1", "tm1"} {
		_, err := repo.CreateUser(ctx, entities.User{ID: id, Username: id})
		require.NoError(t, err)
	}

	_, err := repo.CreateProject(ctx, entities.Project{
		ID: "p1", Name: "Apollo", ProjectManager: "pm1", Status: entities.StatusOnboarding,
	})
	require.NoError(t, err)
	_, err = repo.SetTeamLead(ctx, "p1", "tl1")
	require.NoError(t, err)
	_, err = repo.AddTeamMember(ctx, "p1", "tm1")
	require.NoError(t, err)

	// Status filters apply to lead and member listings only.
	leads, err := repo.ListProjectsByTeamLead(ctx, "tl1", entities.StatusInProgress)
	require.NoError(t, err)
	require.Empty(t, leads)

	_, err = repo.SetProjectStatus(ctx, "p1", entities.StatusInProgress)
	require.NoError(t, err)

	leads, err = repo.ListProjectsByTeamLead(ctx, "tl1", entities.StatusInProgress)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	memberOf, err := repo.ListProjectsByMember(ctx, "tm1", entities.StatusInProgress)
	require.NoError(t, err)
	require.Len(t, memberOf, 1)

	owned, err := repo.ListProjectsByManager(ctx, "pm1")
	require.NoError(t, err)
	require.Len(t, owned, 1)

	owned, err = repo.ListProjectsByManager(ctx, "pm2")
	require.NoError(t, err)
	require.Empty(t, owned)
}

func TestTaskAssigneesDeduplicatedOnCreate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateUser(ctx, entities.User{ID: "pm1", Username: "pm"})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, entities.User{ID: "tm1", Username: "tm"})
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, entities.Project{ID: "p1", Name: "Apollo", ProjectManager: "pm1"})
	require.NoError(t, err)

	task, err := repo.CreateTask(ctx, entities.Task{
		ID: "t1", Description: "one", ProjectID: "p1",
		AssignedTo: []string{"tm1", "tm1"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"tm1"}, task.AssignedTo)

	_, err = repo.AddAssignee(ctx, "t1", "tm1")
	require.ErrorIs(t, err, entities.ErrAlreadyMember)

	task, err = repo.RemoveAssignee(ctx, "t1", "tm1")
	require.NoError(t, err)
	require.Empty(t, task.AssignedTo)
}
