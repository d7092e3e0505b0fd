package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanAddMember(t *testing.T) {
	require.NoError(t, CanAddMember(nil, "u1"))
	require.NoError(t, CanAddMember([]string{"u2", "u3"}, "u1"))
	require.ErrorIs(t, CanAddMember([]string{"u1"}, "u1"), ErrAlreadyMember)
	require.ErrorIs(t, CanAddMember([]string{"u2", "u1"}, "u1"), ErrAlreadyMember)
}

func TestCanRemoveMember(t *testing.T) {
	require.NoError(t, CanRemoveMember([]string{"u1"}, "u1"))
	require.NoError(t, CanRemoveMember([]string{"u2", "u1"}, "u1"))
	require.ErrorIs(t, CanRemoveMember(nil, "u1"), ErrNotAMember)
	require.ErrorIs(t, CanRemoveMember([]string{"u2"}, "u1"), ErrNotAMember)
}

func TestRosterChecksDoNotMutate(t *testing.T) {
	roster := []string{"u1", "u2"}

	require.ErrorIs(t, CanAddMember(roster, "u1"), ErrAlreadyMember)
	require.NoError(t, CanRemoveMember(roster, "u2"))
	require.Equal(t, []string{"u1", "u2"}, roster)
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleProjectManager, RoleTeamLead, RoleTeamMember} {
		require.True(t, r.Valid())
	}
	require.False(t, Role("Manager").Valid())
	require.False(t, Role("admin").Valid())
	require.False(t, Role("").Valid())
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusOnboarding.Valid())
	require.True(t, StatusInProgress.Valid())
	require.True(t, StatusComplete.Valid())
	require.False(t, ProjectStatus("Done").Valid())

	require.True(t, TaskReadyToStart.Valid())
	require.True(t, TaskWaitingForReview.Valid())
	require.False(t, TaskStatus("Blocked").Valid())
}
