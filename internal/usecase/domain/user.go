// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"project-ninja-backend/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// CreateUser registers a user with a hashed credential. Admin only.
func (u *Usecase) CreateUser(ctx context.Context, actor entities.User, fullname, username, password string, role entities.Role) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(actor, entities.OpUserCreate, authTarget{}); err != nil {
		return nil, err
	}
	if fullname == "" || username == "" {
		return nil, fmt.Errorf("%w: fullname and username are required", entities.ErrInvalidArgument)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", entities.ErrInvalidArgument, minPasswordLen)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.repo.CreateUser(ctx, entities.User{
		ID:           uuid.NewString(),
		Fullname:     fullname,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// ListUsers returns all users. Admin only.
func (u *Usecase) ListUsers(ctx context.Context, actor entities.User) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(actor, entities.OpUserList, authTarget{}); err != nil {
		return nil, err
	}
	return u.repo.ListUsers(ctx)
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, actor entities.User, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	if err := authorize(actor, entities.OpUserGet, authTarget{}); err != nil {
		return nil, err
	}
	return u.repo.GetUser(ctx, id)
}
