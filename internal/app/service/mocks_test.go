package service_test

import (
	"context"
	"time"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/access"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *userRepositoryMock) ExistingIDs(ctx context.Context, ids []uint64) ([]uint64, error) {
	args := m.Called(ctx, ids)
	var existing []uint64
	if value := args.Get(0); value != nil {
		existing = value.([]uint64)
	}
	return existing, args.Error(1)
}

type boardRepositoryMock struct {
	mock.Mock
}

func (m *boardRepositoryMock) Create(ctx context.Context, name string, ownerID uint64) (domain.Board, error) {
	args := m.Called(ctx, name, ownerID)
	return args.Get(0).(domain.Board), args.Error(1)
}

func (m *boardRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Board, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Board), args.Error(1)
}

func (m *boardRepositoryMock) ListForUser(ctx context.Context, userID uint64) ([]domain.BoardSummary, error) {
	args := m.Called(ctx, userID)
	var boards []domain.BoardSummary
	if value := args.Get(0); value != nil {
		boards = value.([]domain.BoardSummary)
	}
	return boards, args.Error(1)
}

func (m *boardRepositoryMock) Relation(ctx context.Context, boardID, userID uint64) (access.Relationship, error) {
	args := m.Called(ctx, boardID, userID)
	return args.Get(0).(access.Relationship), args.Error(1)
}

func (m *boardRepositoryMock) Members(ctx context.Context, boardID uint64) ([]domain.User, error) {
	args := m.Called(ctx, boardID)
	var members []domain.User
	if value := args.Get(0); value != nil {
		members = value.([]domain.User)
	}
	return members, args.Error(1)
}

func (m *boardRepositoryMock) UpdateName(ctx context.Context, boardID uint64, name string) error {
	return m.Called(ctx, boardID, name).Error(0)
}

func (m *boardRepositoryMock) SetMembers(ctx context.Context, boardID uint64, memberIDs []uint64) error {
	return m.Called(ctx, boardID, memberIDs).Error(0)
}

func (m *boardRepositoryMock) Delete(ctx context.Context, boardID uint64) error {
	return m.Called(ctx, boardID).Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput, createdBy uint64) (domain.Task, error) {
	args := m.Called(ctx, input, createdBy)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) ListByBoard(ctx context.Context, boardID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, boardID)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListAssignedTo(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListReviewedBy(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListRecentAssignedTo(ctx context.Context, userID uint64, limit int) ([]domain.Task, error) {
	args := m.Called(ctx, userID, limit)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) CountDoneSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *taskRepositoryMock) CountDoneSinceAssignedTo(ctx context.Context, userID uint64, since time.Time) (int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Error(1)
}

func (m *taskRepositoryMock) CountDoneSinceReviewedBy(ctx context.Context, userID uint64, since time.Time) (int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Error(1)
}

func (m *taskRepositoryMock) CountByStatus(ctx context.Context) (domain.StatusDistribution, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StatusDistribution), args.Error(1)
}

func (m *taskRepositoryMock) UrgentToDo(ctx context.Context) (domain.UrgentSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UrgentSummary), args.Error(1)
}

func (m *taskRepositoryMock) CountAssignedTo(ctx context.Context, userID uint64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *taskRepositoryMock) CountReviewedBy(ctx context.Context, userID uint64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type commentRepositoryMock struct {
	mock.Mock
}

func (m *commentRepositoryMock) Create(ctx context.Context, taskID, authorID uint64, content string) (domain.Comment, error) {
	args := m.Called(ctx, taskID, authorID, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) GetByID(ctx context.Context, taskID, commentID uint64) (domain.Comment, error) {
	args := m.Called(ctx, taskID, commentID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)
	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepositoryMock) Delete(ctx context.Context, commentID uint64) error {
	return m.Called(ctx, commentID).Error(0)
}
