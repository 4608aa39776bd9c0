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
	factory "taskapi/pkg/test/factory"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	TaskRepo port.TaskRepository
	UserRepo port.UserRepository

	owner domain.User
	other domain.User
}

func (s *TaskRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.TaskRepo = repository.NewTaskRepository(db)
	s.UserRepo = repository.NewUserRepository(db)

	s.owner, _ = s.UserRepo.Create(context.Background(), buildUser("owner@example.com"))
	s.other, _ = s.UserRepo.Create(context.Background(), buildUser("other@example.com"))
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TaskRepositoryTestSuite))
}

func (s *TaskRepositoryTestSuite) buildTask(title string, createdAt time.Time) domain.Task {
	return factory.NewTask[domain.Task](map[string]any{
		"UUID":        uuid.New(),
		"UserUUID":    s.owner.UUID,
		"Title":       title,
		"Description": "Some description",
		"Completed":   false,
		"CreatedAt":   createdAt,
		"UpdatedAt":   createdAt,
	})
}

func (s *TaskRepositoryTestSuite) TestRepository_ListByUser_Empty() {
	tasks, err := s.TaskRepo.ListByUser(context.Background(), s.owner.UUID)

	Expect(err).To(BeNil())
	Expect(tasks).To(BeEmpty())
}

func (s *TaskRepositoryTestSuite) TestRepository_CreateTask_Success() {
	task, err := s.TaskRepo.Create(context.Background(), s.buildTask("My Task", time.Now()))

	Expect(err).To(BeNil())
	Expect(task.ID).To(BeNumerically(">", 0))
	Expect(task.Title).To(Equal("My Task"))
	Expect(task.UserUUID).To(Equal(s.owner.UUID))
}

func (s *TaskRepositoryTestSuite) TestRepository_ListByUser_NewestFirst() {
	base := time.Now().Add(-time.Hour)

	s.TaskRepo.Create(context.Background(), s.buildTask("oldest", base))
	s.TaskRepo.Create(context.Background(), s.buildTask("middle", base.Add(time.Minute)))
	s.TaskRepo.Create(context.Background(), s.buildTask("newest", base.Add(2*time.Minute)))

	tasks, err := s.TaskRepo.ListByUser(context.Background(), s.owner.UUID)

	Expect(err).To(BeNil())
	Expect(tasks).To(HaveLen(3))
	Expect(tasks[0].Title).To(Equal("newest"))
	Expect(tasks[1].Title).To(Equal("middle"))
	Expect(tasks[2].Title).To(Equal("oldest"))
}

func (s *TaskRepositoryTestSuite) TestRepository_ListByUser_ScopedToOwner() {
	s.TaskRepo.Create(context.Background(), s.buildTask("mine", time.Now()))

	tasks, err := s.TaskRepo.ListByUser(context.Background(), s.other.UUID)

	Expect(err).To(BeNil())
	Expect(tasks).To(BeEmpty())
}

func (s *TaskRepositoryTestSuite) TestRepository_UpdateByUUID_PartialFields() {
	task, _ := s.TaskRepo.Create(context.Background(), s.buildTask("Before", time.Now()))

	completed := true

	updated, err := s.TaskRepo.UpdateByUUID(context.Background(), task.UUID, s.owner.UUID, domain.TaskPatch{
		Completed: &completed,
	})

	Expect(err).To(BeNil())
	Expect(updated.Completed).To(BeTrue())
	// Fields absent from the patch stay untouched.
	Expect(updated.Title).To(Equal("Before"))
	Expect(updated.Description).To(Equal("Some description"))
}

func (s *TaskRepositoryTestSuite) TestRepository_UpdateByUUID_ForeignOwner() {
	task, _ := s.TaskRepo.Create(context.Background(), s.buildTask("Private", time.Now()))

	title := "Hijacked"

	_, err := s.TaskRepo.UpdateByUUID(context.Background(), task.UUID, s.other.UUID, domain.TaskPatch{
		Title: &title,
	})

	Expect(err).To(MatchError(domain.ErrTaskNotFound))

	// The row is unchanged.
	tasks, _ := s.TaskRepo.ListByUser(context.Background(), s.owner.UUID)
	Expect(tasks[0].Title).To(Equal("Private"))
}

func (s *TaskRepositoryTestSuite) TestRepository_UpdateByUUID_Missing() {
	title := "Anything"

	_, err := s.TaskRepo.UpdateByUUID(context.Background(), uuid.New(), s.owner.UUID, domain.TaskPatch{
		Title: &title,
	})

	Expect(err).To(MatchError(domain.ErrTaskNotFound))
}

func (s *TaskRepositoryTestSuite) TestRepository_DeleteByUUID_Success() {
	task, _ := s.TaskRepo.Create(context.Background(), s.buildTask("Doomed", time.Now()))

	err := s.TaskRepo.DeleteByUUID(context.Background(), task.UUID, s.owner.UUID)

	Expect(err).To(BeNil())

	tasks, _ := s.TaskRepo.ListByUser(context.Background(), s.owner.UUID)
	Expect(tasks).To(BeEmpty())
}

func (s *TaskRepositoryTestSuite) TestRepository_DeleteByUUID_ForeignOwner() {
	task, _ := s.TaskRepo.Create(context.Background(), s.buildTask("Protected", time.Now()))

	err := s.TaskRepo.DeleteByUUID(context.Background(), task.UUID, s.other.UUID)

	Expect(err).To(MatchError(domain.ErrTaskNotFound))

	tasks, _ := s.TaskRepo.ListByUser(context.Background(), s.owner.UUID)
	Expect(tasks).To(HaveLen(1))
}
