package ports

import (
	"context"
	"time"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput, createdBy uint64) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	ListByBoard(ctx context.Context, boardID uint64) ([]domain.Task, error)
	ListAssignedTo(ctx context.Context, userID uint64) ([]domain.Task, error)
	ListReviewedBy(ctx context.Context, userID uint64) ([]domain.Task, error)
	ListRecentAssignedTo(ctx context.Context, userID uint64, limit int) ([]domain.Task, error)

	CountDoneSince(ctx context.Context, since time.Time) (int, error)
	CountDoneSinceAssignedTo(ctx context.Context, userID uint64, since time.Time) (int, error)
	CountDoneSinceReviewedBy(ctx context.Context, userID uint64, since time.Time) (int, error)
	CountByStatus(ctx context.Context) (domain.StatusDistribution, error)
	UrgentToDo(ctx context.Context) (domain.UrgentSummary, error)
	CountAssignedTo(ctx context.Context, userID uint64) (int, error)
	CountReviewedBy(ctx context.Context, userID uint64) (int, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
	ListBoardTasks(ctx context.Context, userID, boardID uint64) ([]domain.Task, error)
	// ListAssigned and ListReviewing also return the count of those tasks
	// done within the trailing 14 days, for the X-Tasks-Done-Recently header.
	ListAssigned(ctx context.Context, userID uint64) ([]domain.Task, int, error)
	ListReviewing(ctx context.Context, userID uint64) ([]domain.Task, int, error)
}
