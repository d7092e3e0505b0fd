package usecase

import (
	"context"
	"time"

	"project-ninja-backend/internal/repository"
	"project-ninja-backend/internal/usecase/domain"
	"project-ninja-backend/pkg/token"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, tokens *token.Service, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, tokens, timeout)
}
