package handlers_fiber

import (
	"net/http"

	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/entities"
	"project-ninja-backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostProject creates a project.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	prj, err := h.uc.CreateProject(c.Context(), act, body.Name, body.Description, body.ProjectManager)
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToAPIProject(*prj)})
}

// GetProjects returns the actor's scoped project listing.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	projects, err := h.uc.ListProjects(c.Context(), act)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Projects []api.Project `json:"projects"`
	}{Projects: mapper.ToAPIProjectList(projects)})
}

// GetProject returns a project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	prj, err := h.uc.Project(c.Context(), act, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*prj))
}

// DeleteProject removes a project.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteProject(c.Context(), act, c.Params("id")); err != nil {
		h.log.Errorw("failed to delete project", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PatchProjectStatus updates a project status.
func (h *Handler) PatchProjectStatus(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.SetStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	prj, err := h.uc.SetProjectStatus(c.Context(), act, c.Params("id"), entities.ProjectStatus(body.Status))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*prj))
}

// PutProjectTeamLead replaces the project team lead.
func (h *Handler) PutProjectTeamLead(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.SetTeamLeadRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	prj, err := h.uc.SetTeamLead(c.Context(), act, c.Params("id"), body.UserID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*prj))
}

// PostProjectMember adds a user to the team roster.
func (h *Handler) PostProjectMember(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.RosterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	prj, err := h.uc.AddTeamMember(c.Context(), act, c.Params("id"), body.UserID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*prj))
}

// DeleteProjectMember removes a user from the team roster.
func (h *Handler) DeleteProjectMember(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	prj, err := h.uc.RemoveTeamMember(c.Context(), act, c.Params("id"), c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*prj))
}

// GetProjectMembers lists everyone on the project.
func (h *Handler) GetProjectMembers(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	members, err := h.uc.ProjectMembers(c.Context(), act, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Members []api.User `json:"members"`
	}{Members: mapper.ToAPIUserList(members)})
}

// GetProjectTasks lists tasks under a project.
func (h *Handler) GetProjectTasks(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	tasks, err := h.uc.ListProjectTasks(c.Context(), act, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Tasks []api.Task `json:"tasks"`
	}{Tasks: mapper.ToAPITaskList(tasks)})
}
