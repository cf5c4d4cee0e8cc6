package usecases

import (
	"context"

	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/domain/repositories"
)

// UserUsecase serves the admin console's user listing and detail views
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// ListUsers returns users matching the given role/status/search filter.
func (u *UserUsecase) ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*entities.User, error) {
	return u.userRepo.List(ctx, filter)
}

// GetUser returns a single user by ID.
func (u *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
