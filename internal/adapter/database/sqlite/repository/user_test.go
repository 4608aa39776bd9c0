package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
	. "taskapi/pkg/test"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	UserRepo port.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.UserRepo = repository.NewUserRepository(db)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func buildUser(email string) domain.User {
	now := time.Now()

	return domain.User{
		UUID:              uuid.New(),
		Name:              "Test User",
		Email:             email,
		EncryptedPassword: "encrypted",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (s *UserRepositoryTestSuite) TestRepository_CreateUser_Success() {
	user, err := s.UserRepo.Create(context.Background(), buildUser("test@example.com"))

	Expect(err).To(BeNil())
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Email).To(Equal("test@example.com"))
}

func (s *UserRepositoryTestSuite) TestRepository_CreateUser_DuplicateEmail() {
	_, err := s.UserRepo.Create(context.Background(), buildUser("dup@example.com"))
	Expect(err).To(BeNil())

	// The unique index rejects the second insert even though the two rows
	// carry different uuids.
	_, err = s.UserRepo.Create(context.Background(), buildUser("dup@example.com"))

	Expect(err).To(MatchError(domain.ErrEmailTaken))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByEmail_Success() {
	created, _ := s.UserRepo.Create(context.Background(), buildUser("findme@example.com"))

	found, err := s.UserRepo.GetByEmail(context.Background(), "findme@example.com")

	Expect(err).To(BeNil())
	Expect(found.UUID).To(Equal(created.UUID))
	Expect(found.EncryptedPassword).To(Equal("encrypted"))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByEmail_CaseSensitive() {
	s.UserRepo.Create(context.Background(), buildUser("exact@example.com"))

	_, err := s.UserRepo.GetByEmail(context.Background(), "EXACT@example.com")

	Expect(err).To(MatchError(domain.ErrUserNotFound))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByEmail_NotFound() {
	_, err := s.UserRepo.GetByEmail(context.Background(), "missing@example.com")

	Expect(err).To(MatchError(domain.ErrUserNotFound))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByUUID_Success() {
	created, _ := s.UserRepo.Create(context.Background(), buildUser("byid@example.com"))

	found, err := s.UserRepo.GetByUUID(context.Background(), created.UUID)

	Expect(err).To(BeNil())
	Expect(found.Email).To(Equal("byid@example.com"))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByUUID_NotFound() {
	_, err := s.UserRepo.GetByUUID(context.Background(), uuid.New())

	Expect(err).To(MatchError(domain.ErrUserNotFound))
}
