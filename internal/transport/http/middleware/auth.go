package middleware

import (
	"context"
	"net/http"
	"strings"

	"project-ninja-backend/internal/api"
	"project-ninja-backend/internal/entities"
	"project-ninja-backend/pkg/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ActorKey is the fiber locals key holding the authenticated user.
const ActorKey = "actor"

// UserLookup resolves a user id from a verified token to a full record.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

// Authenticate verifies the bearer token and attaches the acting user
// to the request. Handlers behind it can assume an actor is present.
func Authenticate(log *zap.SugaredLogger, tokens *token.Service, users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "missing Authorization header")
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return unauthorized(c, "malformed Authorization header")
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			log.Debugw("token rejected", "error", err)
			return unauthorized(c, "invalid or expired token")
		}

		usr, err := users.GetUser(c.Context(), userID)
		if err != nil {
			return unauthorized(c, "unknown user")
		}

		c.Locals(ActorKey, *usr)
		return c.Next()
	}
}

// Actor returns the authenticated user attached by Authenticate.
func Actor(c *fiber.Ctx) (entities.User, bool) {
	usr, ok := c.Locals(ActorKey).(entities.User)
	return usr, ok
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorBody{Code: api.CodeWrongCredentials, Message: msg},
	})
}
