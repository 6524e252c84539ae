package service

import (
	"context"
	"errors"
	"time"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/access"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"
)

type TaskService struct {
	taskRepository  ports.TaskRepository
	boardRepository ports.BoardRepository
	userRepository  ports.UserRepository
	now             func() time.Time
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	boardRepository ports.BoardRepository,
	userRepository ports.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepository:  taskRepository,
		boardRepository: boardRepository,
		userRepository:  userRepository,
		now:             time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	// Board existence is decided before membership: a missing board is 404,
	// never a validation or permission failure.
	rel, err := s.boardRepository.Relation(ctx, input.BoardID, userID)
	if err != nil {
		return domain.Task{}, err
	}
	if !access.Allowed(access.EntityTask, access.ActionCreate, rel) {
		return domain.Task{}, domain.ErrForbidden
	}

	if input.Status == "" {
		input.Status = domain.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return domain.Task{}, domain.NewValidationError("status", apierrors.MsgInvalidStatus)
	}
	if input.Priority == "" {
		input.Priority = domain.DefaultTaskPriority
	}

	if err := s.checkUserRef(ctx, input.AssigneeID, "assignee_id", apierrors.MsgInvalidAssignee); err != nil {
		return domain.Task{}, err
	}
	if err := s.checkUserRef(ctx, input.ReviewerID, "reviewer_id", apierrors.MsgInvalidReviewer); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Create(ctx, input, userID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	// Task detail is open to any authenticated user; the table states so.
	if !access.Allowed(access.EntityTask, access.ActionRead, access.Relationship{}) {
		return domain.Task{}, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	rel, err := s.boardRepository.Relation(ctx, task.BoardID, userID)
	if err != nil {
		return domain.Task{}, err
	}
	if !access.Allowed(access.EntityTask, access.ActionUpdate, rel) {
		return domain.Task{}, domain.ErrForbidden
	}

	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.NewValidationError("status", apierrors.MsgInvalidStatus)
	}
	if input.AssigneeIDSet {
		if err := s.checkUserRef(ctx, input.AssigneeID, "assignee_id", apierrors.MsgInvalidAssignee); err != nil {
			return domain.Task{}, err
		}
	}
	if input.ReviewerIDSet {
		if err := s.checkUserRef(ctx, input.ReviewerID, "reviewer_id", apierrors.MsgInvalidReviewer); err != nil {
			return domain.Task{}, err
		}
	}

	return s.taskRepository.Update(ctx, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	rel, err := s.boardRepository.Relation(ctx, task.BoardID, userID)
	if err != nil {
		return err
	}
	if !access.Allowed(access.EntityTask, access.ActionDelete, rel) {
		return domain.ErrForbidden
	}

	return s.taskRepository.Delete(ctx, taskID)
}

func (s *TaskService) ListBoardTasks(ctx context.Context, userID, boardID uint64) ([]domain.Task, error) {
	if _, err := s.boardRepository.GetByID(ctx, boardID); err != nil {
		return nil, err
	}
	return s.taskRepository.ListByBoard(ctx, boardID)
}

func (s *TaskService) ListAssigned(ctx context.Context, userID uint64) ([]domain.Task, int, error) {
	tasks, err := s.taskRepository.ListAssignedTo(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	doneRecently, err := s.taskRepository.CountDoneSinceAssignedTo(ctx, userID, s.now().Add(-domain.RecentlyDoneWindow))
	if err != nil {
		return nil, 0, err
	}
	return tasks, doneRecently, nil
}

func (s *TaskService) ListReviewing(ctx context.Context, userID uint64) ([]domain.Task, int, error) {
	tasks, err := s.taskRepository.ListReviewedBy(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	doneRecently, err := s.taskRepository.CountDoneSinceReviewedBy(ctx, userID, s.now().Add(-domain.RecentlyDoneWindow))
	if err != nil {
		return nil, 0, err
	}
	return tasks, doneRecently, nil
}

// checkUserRef rejects references to users that do not exist. Referencing a
// user outside the board is fine: assignee and reviewer are unconstrained by
// membership.
func (s *TaskService) checkUserRef(ctx context.Context, id *uint64, field, msgKey string) error {
	if id == nil {
		return nil
	}
	if _, err := s.userRepository.GetByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.NewValidationError(field, msgKey)
		}
		return err
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
