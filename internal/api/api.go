// Package api defines the transport DTOs of the HTTP surface. Field
// names and enum literals are the wire contract and must not drift.
package api

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	CodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	CodeWrongCredentials ErrorCode = "WRONG_CREDENTIALS"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyMember    ErrorCode = "ALREADY_MEMBER"
	CodeNotAMember       ErrorCode = "NOT_A_MEMBER"
	CodeUserExists       ErrorCode = "USER_EXISTS"
	CodeInternal         ErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope for all non-2xx responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and a human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// User is the wire shape of a user; the credential hash never leaves
// the server.
type User struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Project is the wire shape of a project. TeamLead is omitted while
// unassigned.
type Project struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	ProjectManager string   `json:"projectManager"`
	TeamLead       string   `json:"teamLead,omitempty"`
	TeamMember     []string `json:"teamMember"`
	Task           []string `json:"task"`
}

// Task is the wire shape of a task.
type Task struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	AssignedTo  []string `json:"assignedTo"`
	ProjectID   string   `json:"projectId"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the authenticated user and their token.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CreateUserRequest is the user creation body.
type CreateUserRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateProjectRequest is the project creation body.
type CreateProjectRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	ProjectManager string `json:"projectManager"`
}

// SetStatusRequest updates a project or task status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// SetTeamLeadRequest replaces the project team lead.
type SetTeamLeadRequest struct {
	UserID string `json:"userId"`
}

// RosterRequest adds a user to a roster.
type RosterRequest struct {
	UserID string `json:"userId"`
}

// CreateTaskRequest is the task creation body.
type CreateTaskRequest struct {
	Description string   `json:"description"`
	ProjectID   string   `json:"projectId"`
	AssignedTo  []string `json:"assignedTo"`
}
