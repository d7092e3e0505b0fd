package handlers_fiber

import (
	"net/http"

	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/entities"
	"project-ninja-backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task under a project.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	task, err := h.uc.CreateTask(c.Context(), act, body.Description, body.ProjectID, body.AssignedTo)
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToAPITask(*task)})
}

// GetTasks lists all tasks.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	tasks, err := h.uc.ListTasks(c.Context(), act)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Tasks []api.Task `json:"tasks"`
	}{Tasks: mapper.ToAPITaskList(tasks)})
}

// GetTask returns a task by id.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.Task(c.Context(), act, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// DeleteTask removes a task.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteTask(c.Context(), act, c.Params("id")); err != nil {
		h.log.Errorw("failed to delete task", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PatchTaskStatus updates a task status.
func (h *Handler) PatchTaskStatus(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.SetStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	task, err := h.uc.SetTaskStatus(c.Context(), act, c.Params("id"), entities.TaskStatus(body.Status))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskAssignee adds a user to the assignee roster.
func (h *Handler) PostTaskAssignee(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.RosterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	task, err := h.uc.AddAssignee(c.Context(), act, c.Params("id"), body.UserID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// DeleteTaskAssignee removes a user from the assignee roster.
func (h *Handler) DeleteTaskAssignee(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.RemoveAssignee(c.Context(), act, c.Params("id"), c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}
