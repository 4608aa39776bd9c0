package service

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo}
}

func (us *UserService) GetByUUID(ctx context.Context, uid uuid.UUID) (domain.User, error) {
	return us.repo.GetByUUID(ctx, uid)
}
