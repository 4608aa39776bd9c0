package port

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

type UserRepository interface {
	GetByUUID(ctx context.Context, uid uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

type UserService interface {
	GetByUUID(ctx context.Context, uid uuid.UUID) (domain.User, error)
}
