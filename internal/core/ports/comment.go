package ports

import (
	"context"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, taskID, authorID uint64, content string) (domain.Comment, error)
	// GetByID resolves a comment scoped to its task; a comment id that exists
	// under a different task is ErrCommentNotFound.
	GetByID(ctx context.Context, taskID, commentID uint64) (domain.Comment, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	Delete(ctx context.Context, commentID uint64) error
}

type CommentService interface {
	ListComments(ctx context.Context, userID, taskID uint64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, userID, taskID uint64, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, userID, taskID, commentID uint64) error
}
