package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

type TaskService struct {
	repo port.TaskRepository
}

func NewTaskService(repo port.TaskRepository) *TaskService {
	return &TaskService{repo}
}

func (ts *TaskService) ListByUser(ctx context.Context, userUUID uuid.UUID) ([]domain.Task, error) {
	return ts.repo.ListByUser(ctx, userUUID)
}

func (ts *TaskService) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	now := time.Now()

	task.UUID = uuid.New()
	task.CreatedAt = now
	task.UpdatedAt = now

	return ts.repo.Create(ctx, task)
}

func (ts *TaskService) UpdateByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID, patch domain.TaskPatch) (domain.Task, error) {
	return ts.repo.UpdateByUUID(ctx, uid, userUUID, patch)
}

func (ts *TaskService) DeleteByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID) error {
	return ts.repo.DeleteByUUID(ctx, uid, userUUID)
}
