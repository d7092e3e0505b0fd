package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API routes. Every route except login sits
// behind the authentication middleware.
func RegisterRoutes(app *fiber.App, h *Handler, authenticate fiber.Handler) {
	root := app.Group("/api")

	root.Post("/auth/login", h.PostLogin)

	authed := root.Group("", authenticate)

	authed.Post("/users", h.PostUser)
	authed.Get("/users", h.GetUsers)
	authed.Get("/users/:id", h.GetUser)

	authed.Post("/projects", h.PostProject)
	authed.Get("/projects", h.GetProjects)
	authed.Get("/projects/:id", h.GetProject)
	authed.Delete("/projects/:id", h.DeleteProject)
	authed.Patch("/projects/:id/status", h.PatchProjectStatus)
	authed.Put("/projects/:id/team-lead", h.PutProjectTeamLead)
	authed.Post("/projects/:id/members", h.PostProjectMember)
	authed.Delete("/projects/:id/members/:userId", h.DeleteProjectMember)
	authed.Get("/projects/:id/members", h.GetProjectMembers)
	authed.Get("/projects/:id/tasks", h.GetProjectTasks)

	authed.Post("/tasks", h.PostTask)
	authed.Get("/tasks", h.GetTasks)
	authed.Get("/tasks/:id", h.GetTask)
	authed.Delete("/tasks/:id", h.DeleteTask)
	authed.Patch("/tasks/:id/status", h.PatchTaskStatus)
	authed.Post("/tasks/:id/assignees", h.PostTaskAssignee)
	authed.Delete("/tasks/:id/assignees/:userId", h.DeleteTaskAssignee)
}
