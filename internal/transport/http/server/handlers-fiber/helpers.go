package handlers_fiber

import (
	"errors"
	"net/http"

	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/entities"
	"project-ninja-backend/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrWrongCredentials):
		status = http.StatusUnauthorized
		code = api.CodeWrongCredentials
		msg = "wrong username or password"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.CodeForbidden
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = err.Error()
	case errors.Is(err, entities.ErrAlreadyMember):
		status = http.StatusConflict
		code = api.CodeAlreadyMember
		msg = err.Error()
	case errors.Is(err, entities.ErrNotAMember):
		status = http.StatusConflict
		code = api.CodeNotAMember
		msg = err.Error()
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = api.CodeUserExists
		msg = "username already exists"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

// actor fetches the authenticated user attached by the auth middleware.
func actor(c *fiber.Ctx) (entities.User, error) {
	usr, ok := middleware.Actor(c)
	if !ok {
		return entities.User{}, errors.New("no actor in request context")
	}
	return usr, nil
}
