// Package memory implements the repository in process memory. It backs
// tests and local development; semantics mirror the postgres backend,
// including atomic roster mutations (the membership check and the write
// happen under one lock, like the single-statement SQL path).
package memory

import (
	"context"
	"sort"
	"sync"

	"project-ninja-backend/internal/entities"

	"go.uber.org/zap"
)

// Memory holds all records behind a single mutex.
type Memory struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	users    map[string]entities.User
	projects map[string]entities.Project
	tasks    map[string]entities.Task
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:      log.Named("repo.memory"),
		users:    make(map[string]entities.User),
		projects: make(map[string]entities.Project),
		tasks:    make(map[string]entities.Task),
	}
}

// OnStart is a no-op for the in-memory backend.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op for the in-memory backend.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// CreateUser inserts a user record.
func (m *Memory) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, entities.ErrUserExists
		}
	}
	m.users[user.ID] = user
	m.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	u := user
	return &u, nil
}

// GetUser fetches a user by id.
func (m *Memory) GetUser(_ context.Context, id string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

// GetUserByUsername fetches a user by login name.
func (m *Memory) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			usr := u
			return &usr, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// ListUsers returns all users ordered by full name.
func (m *Memory) ListUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]entities.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Fullname < users[j].Fullname })
	return users, nil
}

// ListUsersByIDs resolves users preserving the order of ids.
func (m *Memory) ListUsersByIDs(_ context.Context, ids []string) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]entities.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

// CreateProject inserts a project record.
func (m *Memory) CreateProject(_ context.Context, project entities.Project) (*entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[project.ProjectManager]; !ok {
		return nil, entities.ErrUserNotFound
	}
	project.TeamMembers = append([]string(nil), project.TeamMembers...)
	project.Tasks = nil
	m.projects[project.ID] = project
	m.log.Infow("project created", "project_id", project.ID, "manager", project.ProjectManager)
	return m.projectCopy(project.ID), nil
}

// GetProject fetches a project with its rosters.
func (m *Memory) GetProject(_ context.Context, id string) (*entities.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.projects[id]; !ok {
		return nil, entities.ErrProjectNotFound
	}
	return m.projectCopy(id), nil
}

// ListProjects returns all projects ordered by name.
func (m *Memory) ListProjects(_ context.Context) ([]entities.Project, error) {
	return m.filterProjects(func(entities.Project) bool { return true }), nil
}

// ListProjectsByManager returns projects owned by the manager.
func (m *Memory) ListProjectsByManager(_ context.Context, managerID string) ([]entities.Project, error) {
	return m.filterProjects(func(p entities.Project) bool { return p.ProjectManager == managerID }), nil
}

// ListProjectsByTeamLead returns projects led by the user in the given status.
func (m *Memory) ListProjectsByTeamLead(_ context.Context, leadID string, status entities.ProjectStatus) ([]entities.Project, error) {
	return m.filterProjects(func(p entities.Project) bool {
		return p.TeamLead == leadID && p.Status == status
	}), nil
}

// ListProjectsByMember returns projects with the user on the roster in the given status.
func (m *Memory) ListProjectsByMember(_ context.Context, memberID string, status entities.ProjectStatus) ([]entities.Project, error) {
	return m.filterProjects(func(p entities.Project) bool {
		if p.Status != status {
			return false
		}
		for _, id := range p.TeamMembers {
			if id == memberID {
				return true
			}
		}
		return false
	}), nil
}

// DeleteProject removes the project and cascades to its tasks.
func (m *Memory) DeleteProject(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return entities.ErrProjectNotFound
	}
	delete(m.projects, id)
	for taskID, t := range m.tasks {
		if t.ProjectID == id {
			delete(m.tasks, taskID)
		}
	}
	m.log.Infow("project deleted", "project_id", id)
	return nil
}

// SetProjectStatus updates the status field.
func (m *Memory) SetProjectStatus(_ context.Context, id string, status entities.ProjectStatus) (*entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	p.Status = status
	m.projects[p.ID] = p
	return m.projectCopy(id), nil
}

// SetTeamLead replaces the team lead reference wholesale.
func (m *Memory) SetTeamLead(_ context.Context, id, userID string) (*entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	if _, ok := m.users[userID]; !ok {
		return nil, entities.ErrUserNotFound
	}
	p.TeamLead = userID
	m.projects[p.ID] = p
	return m.projectCopy(id), nil
}

// AddTeamMember inserts into the member set, rejecting duplicates.
func (m *Memory) AddTeamMember(_ context.Context, id, userID string) (*entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	if _, ok := m.users[userID]; !ok {
		return nil, entities.ErrUserNotFound
	}
	if err := entities.CanAddMember(p.TeamMembers, userID); err != nil {
		return nil, err
	}
	p.TeamMembers = append(append([]string(nil), p.TeamMembers...), userID)
	m.projects[p.ID] = p
	return m.projectCopy(id), nil
}

// RemoveTeamMember deletes from the member set, rejecting absent ids.
func (m *Memory) RemoveTeamMember(_ context.Context, id, userID string) (*entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	if err := entities.CanRemoveMember(p.TeamMembers, userID); err != nil {
		return nil, err
	}
	p.TeamMembers = without(p.TeamMembers, userID)
	m.projects[p.ID] = p
	return m.projectCopy(id), nil
}

// CreateTask inserts a task record.
func (m *Memory) CreateTask(_ context.Context, task entities.Task) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[task.ProjectID]; !ok {
		return nil, entities.ErrProjectNotFound
	}
	for _, userID := range task.AssignedTo {
		if _, ok := m.users[userID]; !ok {
			return nil, entities.ErrUserNotFound
		}
	}
	task.AssignedTo = dedupe(task.AssignedTo)
	m.tasks[task.ID] = task
	m.log.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID)
	t := m.tasks[task.ID]
	t.AssignedTo = append([]string(nil), t.AssignedTo...)
	return &t, nil
}

// GetTask fetches a task by id.
func (m *Memory) GetTask(_ context.Context, id string) (*entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	t.AssignedTo = append([]string(nil), t.AssignedTo...)
	return &t, nil
}

// ListTasks returns all tasks.
func (m *Memory) ListTasks(_ context.Context) ([]entities.Task, error) {
	return m.filterTasks(func(entities.Task) bool { return true }), nil
}

// ListTasksByProject returns tasks under a project.
func (m *Memory) ListTasksByProject(_ context.Context, projectID string) ([]entities.Task, error) {
	return m.filterTasks(func(t entities.Task) bool { return t.ProjectID == projectID }), nil
}

// DeleteTask removes the task.
func (m *Memory) DeleteTask(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return entities.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

// SetTaskStatus updates the status field.
func (m *Memory) SetTaskStatus(_ context.Context, id string, status entities.TaskStatus) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	t.Status = status
	m.tasks[t.ID] = t
	t.AssignedTo = append([]string(nil), t.AssignedTo...)
	return &t, nil
}

// AddAssignee inserts into the assignee set, rejecting duplicates.
func (m *Memory) AddAssignee(_ context.Context, id, userID string) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	if _, ok := m.users[userID]; !ok {
		return nil, entities.ErrUserNotFound
	}
	if err := entities.CanAddMember(t.AssignedTo, userID); err != nil {
		return nil, err
	}
	t.AssignedTo = append(append([]string(nil), t.AssignedTo...), userID)
	m.tasks[t.ID] = t
	return &t, nil
}

// RemoveAssignee deletes from the assignee set, rejecting absent ids.
func (m *Memory) RemoveAssignee(_ context.Context, id, userID string) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	if err := entities.CanRemoveMember(t.AssignedTo, userID); err != nil {
		return nil, err
	}
	t.AssignedTo = without(t.AssignedTo, userID)
	m.tasks[t.ID] = t
	return &t, nil
}

// projectCopy returns a detached copy with the derived task roster. The
// caller must hold at least a read lock.
func (m *Memory) projectCopy(id string) *entities.Project {
	p := m.projects[id]
	p.TeamMembers = append([]string(nil), p.TeamMembers...)
	p.Tasks = nil
	for taskID, t := range m.tasks {
		if t.ProjectID == id {
			p.Tasks = append(p.Tasks, taskID)
		}
	}
	sort.Strings(p.Tasks)
	return &p
}

func (m *Memory) filterProjects(keep func(entities.Project) bool) []entities.Project {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]entities.Project, 0)
	for id, p := range m.projects {
		if keep(p) {
			projects = append(projects, *m.projectCopy(id))
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
	return projects
}

func (m *Memory) filterTasks(keep func(entities.Task) bool) []entities.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := make([]entities.Task, 0)
	for _, t := range m.tasks {
		if keep(t) {
			t.AssignedTo = append([]string(nil), t.AssignedTo...)
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

func without(list []string, target string) []string {
	res := make([]string, 0, len(list))
	for _, v := range list {
		if v != target {
			res = append(res, v)
		}
	}
	return res
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	res := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
