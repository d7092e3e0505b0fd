// Package domain contains application Usecases orchestrating domain logic by authentication.
package domain

import (
	"context"
	"errors"
	"fmt"

	"project-ninja-backend/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials and issues a bearer token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, username, password string) (*entities.User, string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	usr, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, "", entities.ErrWrongCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, "", entities.ErrWrongCredentials
	}

	signed, err := u.tokens.Issue(usr.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	u.log.Infow("user logged in", "user_id", usr.ID, "role", usr.Role)
	return usr, signed, nil
}
