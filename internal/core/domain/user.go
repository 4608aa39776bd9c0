package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                int64
	UUID              uuid.UUID
	Name              string `validate:"required,min=3,max=30"`
	Email             string `validate:"required,email,min=6,max=50"`
	EncryptedPassword string `validate:"required"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
