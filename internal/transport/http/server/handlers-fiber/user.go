package handlers_fiber

import (
	"net/http"

	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/entities"
	"project-ninja-backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUser registers a user.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	usr, err := h.uc.CreateUser(c.Context(), act, body.Fullname, body.Username, body.Password, entities.Role(body.Role))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*usr)})
}

// GetUsers lists all users.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	users, err := h.uc.ListUsers(c.Context(), act)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToAPIUserList(users)})
}

// GetUser returns a user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	usr, err := h.uc.User(c.Context(), act, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*usr))
}
