package tests

import (
	"context"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.AuthResult), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.AuthResult), args.Error(1)
}

type boardServiceMock struct {
	mock.Mock
}

func (m *boardServiceMock) ListBoards(ctx context.Context, userID uint64) ([]domain.BoardSummary, error) {
	args := m.Called(ctx, userID)

	var boards []domain.BoardSummary
	if value := args.Get(0); value != nil {
		boards = value.([]domain.BoardSummary)
	}
	return boards, args.Error(1)
}

func (m *boardServiceMock) CreateBoard(ctx context.Context, userID uint64, input domain.CreateBoardInput) (domain.BoardDetail, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.BoardDetail), args.Error(1)
}

func (m *boardServiceMock) GetBoard(ctx context.Context, userID, boardID uint64) (domain.BoardDetail, error) {
	args := m.Called(ctx, userID, boardID)
	return args.Get(0).(domain.BoardDetail), args.Error(1)
}

func (m *boardServiceMock) UpdateBoard(ctx context.Context, userID, boardID uint64, input domain.UpdateBoardInput) (domain.BoardDetail, error) {
	args := m.Called(ctx, userID, boardID, input)
	return args.Get(0).(domain.BoardDetail), args.Error(1)
}

func (m *boardServiceMock) DeleteBoard(ctx context.Context, userID, boardID uint64) error {
	args := m.Called(ctx, userID, boardID)
	return args.Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) ListBoardTasks(ctx context.Context, userID, boardID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID, boardID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListAssigned(ctx context.Context, userID uint64) ([]domain.Task, int, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Int(1), args.Error(2)
}

func (m *taskServiceMock) ListReviewing(ctx context.Context, userID uint64) ([]domain.Task, int, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Int(1), args.Error(2)
}

type commentServiceMock struct {
	mock.Mock
}

func (m *commentServiceMock) ListComments(ctx context.Context, userID, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, userID, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentServiceMock) CreateComment(ctx context.Context, userID, taskID uint64, content string) (domain.Comment, error) {
	args := m.Called(ctx, userID, taskID, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) DeleteComment(ctx context.Context, userID, taskID, commentID uint64) error {
	args := m.Called(ctx, userID, taskID, commentID)
	return args.Error(0)
}

type dashboardServiceMock struct {
	mock.Mock
}

func (m *dashboardServiceMock) Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}
