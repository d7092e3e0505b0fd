package entities

// Operation names every guarded action the core exposes. The
// authorization table is keyed by operation and role.
type Operation string

const (
	OpUserCreate Operation = "user.create"
	OpUserList   Operation = "user.list"
	OpUserGet    Operation = "user.get"

	OpProjectCreate       Operation = "project.create"
	OpProjectDelete       Operation = "project.delete"
	OpProjectGet          Operation = "project.get"
	OpProjectList         Operation = "project.list"
	OpProjectSetStatus    Operation = "project.set_status"
	OpProjectSetTeamLead  Operation = "project.set_team_lead"
	OpProjectAddMember    Operation = "project.add_member"
	OpProjectRemoveMember Operation = "project.remove_member"
	OpProjectListMembers  Operation = "project.list_members"

	OpTaskCreate         Operation = "task.create"
	OpTaskDelete         Operation = "task.delete"
	OpTaskGet            Operation = "task.get"
	OpTaskList           Operation = "task.list"
	OpTaskSetStatus      Operation = "task.set_status"
	OpTaskAddAssignee    Operation = "task.add_assignee"
	OpTaskRemoveAssignee Operation = "task.remove_assignee"
)
