package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/port"
	"taskapi/internal/core/service"
	"taskapi/pkg/auth"
	. "taskapi/pkg/test"
)

type AuthServiceTestSuite struct {
	suite.Suite
	UserRepo port.UserRepository
	Tokens   port.TokenService
	Svc      *service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.UserRepo = repository.NewUserRepository(db)
	s.Tokens = auth.NewJWT("test-secret", time.Hour)
	s.Svc = service.NewAuthService(s.UserRepo, s.Tokens)
}

func TestAuthServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthServiceTestSuite))
}

func registerRequest(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "Abcdef1",
	}
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	user, token, err := s.Svc.Register(context.Background(), registerRequest("new@example.com"))

	Expect(err).To(BeNil())
	Expect(user.Email).To(Equal("new@example.com"))
	// The password never survives in plaintext.
	Expect(user.EncryptedPassword).ToNot(Equal("Abcdef1"))

	// The issued token resolves back to the new user.
	verified, err := s.Tokens.VerifyToken(token)
	Expect(err).To(BeNil())
	Expect(verified).To(Equal(user.UUID))
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	_, _, err := s.Svc.Register(context.Background(), registerRequest("dup@example.com"))
	Expect(err).To(BeNil())

	_, _, err = s.Svc.Register(context.Background(), registerRequest("dup@example.com"))

	Expect(err).To(MatchError(domain.ErrEmailTaken))
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	registered, _, err := s.Svc.Register(context.Background(), registerRequest("login@example.com"))
	Expect(err).To(BeNil())

	user, token, err := s.Svc.Login(context.Background(), &request.LoginRequest{
		Email:    "login@example.com",
		Password: "Abcdef1",
	})

	Expect(err).To(BeNil())
	Expect(user.UUID).To(Equal(registered.UUID))

	verified, err := s.Tokens.VerifyToken(token)
	Expect(err).To(BeNil())
	Expect(verified).To(Equal(registered.UUID))
}

func (s *AuthServiceTestSuite) TestLogin_WrongPasswordAndUnknownEmailIndistinguishable() {
	_, _, err := s.Svc.Register(context.Background(), registerRequest("victim@example.com"))
	Expect(err).To(BeNil())

	_, _, wrongPassword := s.Svc.Login(context.Background(), &request.LoginRequest{
		Email:    "victim@example.com",
		Password: "Wrong1pass",
	})

	_, _, unknownEmail := s.Svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Abcdef1",
	})

	Expect(wrongPassword).To(MatchError(domain.ErrInvalidCredentials))
	Expect(unknownEmail).To(MatchError(domain.ErrInvalidCredentials))
}
