// Package entities contains core business entities.
package entities

// Role enumerates the four mutually exclusive user roles. Precedence
// between roles (Admin over everyone else) lives in the authorization
// table, never in the data.
type Role string

const (
	// RoleAdmin administrates users and projects.
	RoleAdmin Role = "Admin"
	// RoleProjectManager owns projects and their rosters.
	RoleProjectManager Role = "Project Manager"
	// RoleTeamLead runs tasks on projects assigned to them.
	RoleTeamLead Role = "Team Lead"
	// RoleTeamMember works on tasks.
	RoleTeamMember Role = "Team Member"
)

// Valid reports whether the role is one of the four known literals.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTeamLead, RoleTeamMember:
		return true
	}
	return false
}

// User is a domain representation of an authenticated identity.
type User struct {
	ID           string
	Fullname     string
	Username     string
	PasswordHash string
	Role         Role
}
