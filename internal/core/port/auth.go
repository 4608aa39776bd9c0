package port

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (domain.User, string, error)
	Login(ctx context.Context, req *request.LoginRequest) (domain.User, string, error)
}

// TokenService issues and verifies the bearer tokens carried on protected
// routes. The secret and TTL come from config, never from ambient env reads.
type TokenService interface {
	CreateToken(userUUID uuid.UUID) (string, error)
	VerifyToken(token string) (uuid.UUID, error)
}
