package domain

import (
	"testing"

	"project-ninja-backend/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestAuthorizeAdminRowsAreExplicit(t *testing.T) {
	admin := entities.User{ID: "a1", Role: entities.RoleAdmin}

	// Admin is allowed on every operation without project scoping,
	// including on projects led by someone else.
	other := &entities.Project{ID: "p1", TeamLead: "tl-other"}
	for op := range accessTable {
		require.NoError(t, authorize(admin, op, authTarget{project: other}), string(op))
	}
}

func TestAuthorizeMissingCellDenies(t *testing.T) {
	tests := []struct {
		name  string
		actor entities.User
		op    entities.Operation
	}{
		{"member_cannot_create_user", entities.User{Role: entities.RoleTeamMember}, entities.OpUserCreate},
		{"lead_cannot_create_user", entities.User{Role: entities.RoleTeamLead}, entities.OpUserCreate},
		{"manager_cannot_create_user", entities.User{Role: entities.RoleProjectManager}, entities.OpUserCreate},
		{"member_cannot_list_users", entities.User{Role: entities.RoleTeamMember}, entities.OpUserList},
		{"manager_cannot_create_project", entities.User{Role: entities.RoleProjectManager}, entities.OpProjectCreate},
		{"manager_cannot_delete_project", entities.User{Role: entities.RoleProjectManager}, entities.OpProjectDelete},
		{"lead_cannot_add_team_member", entities.User{Role: entities.RoleTeamLead}, entities.OpProjectAddMember},
		{"member_cannot_set_project_status", entities.User{Role: entities.RoleTeamMember}, entities.OpProjectSetStatus},
		{"manager_cannot_create_task", entities.User{Role: entities.RoleProjectManager}, entities.OpTaskCreate},
		{"member_cannot_delete_task", entities.User{Role: entities.RoleTeamMember}, entities.OpTaskDelete},
		{"unknown_role_denied", entities.User{Role: entities.Role("Intern")}, entities.OpTaskList},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := authorize(tt.actor, tt.op, authTarget{})
			require.ErrorIs(t, err, entities.ErrForbidden)
		})
	}
}

func TestAuthorizeTeamLeadScopedToOwnProject(t *testing.T) {
	lead := entities.User{ID: "tl1", Role: entities.RoleTeamLead}
	owned := &entities.Project{ID: "p1", TeamLead: "tl1"}
	foreign := &entities.Project{ID: "p2", TeamLead: "tl2"}
	unassigned := &entities.Project{ID: "p3"}

	scoped := []entities.Operation{
		entities.OpTaskCreate,
		entities.OpTaskDelete,
		entities.OpTaskAddAssignee,
		entities.OpTaskRemoveAssignee,
		entities.OpProjectListMembers,
	}

	for _, op := range scoped {
		require.NoError(t, authorize(lead, op, authTarget{project: owned}), string(op))
		require.ErrorIs(t, authorize(lead, op, authTarget{project: foreign}), entities.ErrForbidden, string(op))
		require.ErrorIs(t, authorize(lead, op, authTarget{project: unassigned}), entities.ErrForbidden, string(op))
		require.ErrorIs(t, authorize(lead, op, authTarget{}), entities.ErrForbidden, string(op))
	}
}

func TestAuthorizeTaskStatusOpenToAllRoles(t *testing.T) {
	task := &entities.Task{ID: "t1", ProjectID: "p1"}

	roles := []entities.Role{
		entities.RoleAdmin,
		entities.RoleProjectManager,
		entities.RoleTeamLead,
		entities.RoleTeamMember,
	}
	for _, role := range roles {
		actor := entities.User{ID: "u1", Role: role}
		require.NoError(t, authorize(actor, entities.OpTaskSetStatus, authTarget{task: task}), string(role))
		require.NoError(t, authorize(actor, entities.OpTaskGet, authTarget{}), string(role))
		require.NoError(t, authorize(actor, entities.OpTaskList, authTarget{}), string(role))
		require.NoError(t, authorize(actor, entities.OpProjectList, authTarget{}), string(role))
	}
}

func TestAuthorizeIsPure(t *testing.T) {
	lead := entities.User{ID: "tl1", Role: entities.RoleTeamLead}
	prj := &entities.Project{ID: "p1", TeamLead: "tl2"}

	// Same inputs, same verdict, and the target is left untouched.
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, authorize(lead, entities.OpTaskCreate, authTarget{project: prj}), entities.ErrForbidden)
	}
	require.Equal(t, "tl2", prj.TeamLead)
}

func TestAuthorizeUnknownOperationDenies(t *testing.T) {
	admin := entities.User{ID: "a1", Role: entities.RoleAdmin}
	err := authorize(admin, entities.Operation("project.transfer"), authTarget{})
	require.ErrorIs(t, err, entities.ErrForbidden)
}
