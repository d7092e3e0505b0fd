// Package domain contains the core authorization and lifecycle logic.
package domain

import (
	"fmt"

	"project-ninja-backend/internal/entities"
)

// authTarget carries the entity state a rule may need. For task
// operations Project is the task's owning project.
type authTarget struct {
	project *entities.Project
	task    *entities.Task
}

// accessRule decides for one (operation, role) cell. A nil return
// allows the action.
type accessRule func(actor entities.User, tgt authTarget) error

func allow(entities.User, authTarget) error { return nil }

// leadsProject requires the actor to be the team lead of the target
// project. Task operations are scoped through the owning project.
func leadsProject(actor entities.User, tgt authTarget) error {
	if tgt.project == nil || tgt.project.TeamLead != actor.ID {
		return fmt.Errorf("%w: not the team lead of this project", entities.ErrForbidden)
	}
	return nil
}

// accessTable is the full authorization matrix. Admin rows are written
// out per operation rather than derived from the other roles, so the
// matrix stays auditable as data. A missing cell denies.
var accessTable = map[entities.Operation]map[entities.Role]accessRule{
	entities.OpUserCreate: {
		entities.RoleAdmin: allow,
	},
	entities.OpUserList: {
		entities.RoleAdmin: allow,
	},
	entities.OpUserGet: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
		entities.RoleTeamLead:       allow,
		entities.RoleTeamMember:     allow,
	},
	entities.OpProjectCreate: {
		entities.RoleAdmin: allow,
	},
	entities.OpProjectDelete: {
		entities.RoleAdmin: allow,
	},
	entities.OpProjectGet: {
		entities.RoleAdmin: allow,
	},
	// Listing is allowed for every role; the result set is scoped per
	// role by the listing operation itself.
	entities.OpProjectList: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
		entities.RoleTeamLead:       allow,
		entities.RoleTeamMember:     allow,
	},
	entities.OpProjectSetStatus: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
	},
	entities.OpProjectSetTeamLead: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
	},
	entities.OpProjectAddMember: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
	},
	entities.OpProjectRemoveMember: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
	},
	entities.OpProjectListMembers: {
		entities.RoleAdmin:    allow,
		entities.RoleTeamLead: leadsProject,
	},
	entities.OpTaskCreate: {
		entities.RoleAdmin:    allow,
		entities.RoleTeamLead: leadsProject,
	},
	entities.OpTaskDelete: {
		entities.RoleAdmin:    allow,
		entities.RoleTeamLead: leadsProject,
	},
	entities.OpTaskAddAssignee: {
		entities.RoleAdmin:    allow,
		entities.RoleTeamLead: leadsProject,
	},
	entities.OpTaskRemoveAssignee: {
		entities.RoleAdmin:    allow,
		entities.RoleTeamLead: leadsProject,
	},
	// Task status and reads are open to every authenticated role. This
	// is the most permissive rule in the system and is intentional.
	entities.OpTaskSetStatus: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
		entities.RoleTeamLead:       allow,
		entities.RoleTeamMember:     allow,
	},
	entities.OpTaskGet: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
		entities.RoleTeamLead:       allow,
		entities.RoleTeamMember:     allow,
	},
	entities.OpTaskList: {
		entities.RoleAdmin:          allow,
		entities.RoleProjectManager: allow,
		entities.RoleTeamLead:       allow,
		entities.RoleTeamMember:     allow,
	},
}

// authorize decides whether the actor may perform the operation on the
// target. It is a pure function of its arguments: the same actor,
// operation and target state always yield the same verdict.
func authorize(actor entities.User, op entities.Operation, tgt authTarget) error {
	cells, ok := accessTable[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %s", entities.ErrForbidden, op)
	}
	rule, ok := cells[actor.Role]
	if !ok {
		return fmt.Errorf("%w: role %q may not perform %s", entities.ErrForbidden, actor.Role, op)
	}
	return rule(actor, tgt)
}
