package handlers_fiber

import (
	"net/http"

	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostLogin authenticates a user and returns a bearer token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	usr, signed, err := h.uc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.LoginResponse{
		User:  mapper.ToAPIUser(*usr),
		Token: signed,
	})
}
