package ports

import (
	"context"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/access"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

type BoardRepository interface {
	Create(ctx context.Context, name string, ownerID uint64) (domain.Board, error)
	GetByID(ctx context.Context, id uint64) (domain.Board, error)
	// ListForUser returns every board the user owns, is a member of, or
	// participates in through a task, deduplicated, with aggregate counts.
	ListForUser(ctx context.Context, userID uint64) ([]domain.BoardSummary, error)
	// Relation resolves the user's relationship to the board in a single
	// store round trip. Returns domain.ErrBoardNotFound if the board is gone.
	Relation(ctx context.Context, boardID, userID uint64) (access.Relationship, error)
	Members(ctx context.Context, boardID uint64) ([]domain.User, error)
	UpdateName(ctx context.Context, boardID uint64, name string) error
	SetMembers(ctx context.Context, boardID uint64, memberIDs []uint64) error
	// Delete removes the board, its tasks and their comments in one
	// transaction.
	Delete(ctx context.Context, boardID uint64) error
}

type BoardService interface {
	ListBoards(ctx context.Context, userID uint64) ([]domain.BoardSummary, error)
	CreateBoard(ctx context.Context, userID uint64, input domain.CreateBoardInput) (domain.BoardDetail, error)
	GetBoard(ctx context.Context, userID, boardID uint64) (domain.BoardDetail, error)
	UpdateBoard(ctx context.Context, userID, boardID uint64, input domain.UpdateBoardInput) (domain.BoardDetail, error)
	DeleteBoard(ctx context.Context, userID, boardID uint64) error
}
