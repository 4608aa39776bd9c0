package port

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

// TaskRepository queries always take the owner identity. There is no way to
// reach another user's row through this interface.
type TaskRepository interface {
	ListByUser(ctx context.Context, userUUID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID, patch domain.TaskPatch) (domain.Task, error)
	DeleteByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID) error
}

type TaskService interface {
	ListByUser(ctx context.Context, userUUID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID, patch domain.TaskPatch) (domain.Task, error)
	DeleteByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID) error
}
