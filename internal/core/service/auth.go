package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/port"
	"taskapi/internal/core/util"
)

type AuthService struct {
	repo   port.UserRepository
	tokens port.TokenService
}

func NewAuthService(repo port.UserRepository, tokens port.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

func (as *AuthService) Register(ctx context.Context, req *request.RegisterRequest) (domain.User, string, error) {
	// Fast path only. The unique index on users.email is the real guard;
	// a concurrent duplicate surfaces as ErrEmailTaken from Create.
	if _, err := as.repo.GetByEmail(ctx, req.Email); err == nil {
		return domain.User{}, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, "", err
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return domain.User{}, "", err
	}

	now := time.Now()

	user := domain.User{
		UUID:              uuid.New(),
		Name:              req.Name,
		Email:             req.Email,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := as.repo.Create(ctx, user)

	if err != nil {
		return domain.User{}, "", err
	}

	token, err := as.tokens.CreateToken(saved.UUID)

	if err != nil {
		return domain.User{}, "", err
	}

	return saved, token, nil
}

func (as *AuthService) Login(ctx context.Context, req *request.LoginRequest) (domain.User, string, error) {
	user, err := as.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure as a wrong password.
			return domain.User{}, "", domain.ErrInvalidCredentials
		}

		return domain.User{}, "", err
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		slog.Debug("Auth#Login", "compare_password", err)
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := as.tokens.CreateToken(user.UUID)

	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}
