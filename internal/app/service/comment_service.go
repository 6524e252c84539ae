package service

import (
	"context"
	"strings"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/access"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"
)

type CommentService struct {
	commentRepository ports.CommentRepository
	taskRepository    ports.TaskRepository
	boardRepository   ports.BoardRepository
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	taskRepository ports.TaskRepository,
	boardRepository ports.BoardRepository,
) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		taskRepository:    taskRepository,
		boardRepository:   boardRepository,
	}
}

func (s *CommentService) ListComments(ctx context.Context, userID, taskID uint64) ([]domain.Comment, error) {
	if err := s.requireBoardRole(ctx, userID, taskID, access.ActionRead); err != nil {
		return nil, err
	}
	return s.commentRepository.ListByTask(ctx, taskID)
}

func (s *CommentService) CreateComment(ctx context.Context, userID, taskID uint64, content string) (domain.Comment, error) {
	if err := s.requireBoardRole(ctx, userID, taskID, access.ActionCreate); err != nil {
		return domain.Comment{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.NewValidationError("content", apierrors.MsgCommentRequired)
	}
	return s.commentRepository.Create(ctx, taskID, userID, content)
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, taskID, commentID uint64) error {
	if _, err := s.taskRepository.GetByID(ctx, taskID); err != nil {
		return err
	}
	comment, err := s.commentRepository.GetByID(ctx, taskID, commentID)
	if err != nil {
		return err
	}

	// Deletion narrows to strict authorship; board role is irrelevant.
	rel := access.Relationship{Author: comment.AuthorID == userID}
	if !access.Allowed(access.EntityComment, access.ActionDelete, rel) {
		return domain.ErrForbidden
	}

	return s.commentRepository.Delete(ctx, commentID)
}

// requireBoardRole resolves the comment's task, then gates on the caller's
// role in the task's board. Missing task reads as not found before any
// permission answer.
func (s *CommentService) requireBoardRole(ctx context.Context, userID, taskID uint64, action access.Action) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	rel, err := s.boardRepository.Relation(ctx, task.BoardID, userID)
	if err != nil {
		return err
	}
	if !access.Allowed(access.EntityComment, action, rel) {
		return domain.ErrForbidden
	}
	return nil
}

var _ ports.CommentService = (*CommentService)(nil)
