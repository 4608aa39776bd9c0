package domain

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          int64
	UUID        uuid.UUID
	UserUUID    uuid.UUID
	Title       string `validate:"required,min=3,max=100"`
	Description string `validate:"max=500"`
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries only the fields present in an update request. A nil
// field is left untouched.
type TaskPatch struct {
	Title       *string `validate:"omitempty,min=3,max=100"`
	Description *string `validate:"omitempty,max=500"`
	Completed   *bool
}

func (p *TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
