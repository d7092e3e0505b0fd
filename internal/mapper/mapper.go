// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/entities"
)

// ToAPIUser maps entities.User to transport model. The password hash is
// deliberately dropped.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:       u.ID,
		Fullname: u.Fullname,
		Username: u.Username,
		Role:     string(u.Role),
	}
}

// ToAPIUserList maps a slice of users to transport slice.
func ToAPIUserList(users []entities.User) []api.User {
	res := make([]api.User, 0, len(users))
	for _, u := range users {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         string(p.Status),
		ProjectManager: p.ProjectManager,
		TeamLead:       p.TeamLead,
		TeamMember:     emptyIfNil(p.TeamMembers),
		Task:           emptyIfNil(p.Tasks),
	}
}

// ToAPIProjectList maps a slice of projects to transport slice.
func ToAPIProjectList(projects []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	return api.Task{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		AssignedTo:  emptyIfNil(t.AssignedTo),
		ProjectID:   t.ProjectID,
	}
}

// ToAPITaskList maps a slice of tasks to transport slice.
func ToAPITaskList(tasks []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, ToAPITask(t))
	}
	return res
}

// emptyIfNil keeps rosters serialized as [] rather than null.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
