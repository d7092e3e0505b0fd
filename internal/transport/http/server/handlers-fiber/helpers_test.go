package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, err error) (int, api.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, testErr := app.Test(req)
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorCode
	}{
		{"invalid_argument", entities.ErrInvalidArgument, http.StatusBadRequest, api.CodeInvalidArgument},
		{"wrong_credentials", entities.ErrWrongCredentials, http.StatusUnauthorized, api.CodeWrongCredentials},
		{"forbidden", entities.ErrForbidden, http.StatusForbidden, api.CodeForbidden},
		{"user_not_found", entities.ErrUserNotFound, http.StatusNotFound, api.CodeNotFound},
		{"project_not_found", entities.ErrProjectNotFound, http.StatusNotFound, api.CodeNotFound},
		{"task_not_found", entities.ErrTaskNotFound, http.StatusNotFound, api.CodeNotFound},
		{"already_member", entities.ErrAlreadyMember, http.StatusConflict, api.CodeAlreadyMember},
		{"not_a_member", entities.ErrNotAMember, http.StatusConflict, api.CodeNotAMember},
		{"user_exists", entities.ErrUserExists, http.StatusConflict, api.CodeUserExists},
		{"unknown_collapses_to_internal", errors.New("pool exhausted"), http.StatusInternalServerError, api.CodeInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			status, body := decodeError(t, tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, body.Error.Code)
			require.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestWriteErrorUnwrapsSentinels(t *testing.T) {
	wrapped := fmt.Errorf("%w: role %q may not perform user.create", entities.ErrForbidden, "Team Member")
	status, body := decodeError(t, wrapped)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, api.CodeForbidden, body.Error.Code)
	require.Contains(t, body.Error.Message, "Team Member")
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	_, body := decodeError(t, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	require.Equal(t, "internal error", body.Error.Message)
}

func TestWriteErrorWrongCredentialsMessageIsGeneric(t *testing.T) {
	_, body := decodeError(t, entities.ErrWrongCredentials)
	require.Equal(t, "wrong username or password", body.Error.Message)
}
