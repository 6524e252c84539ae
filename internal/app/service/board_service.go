package service

import (
	"context"
	"strings"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/access"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"
)

type BoardService struct {
	boardRepository ports.BoardRepository
	taskRepository  ports.TaskRepository
	userRepository  ports.UserRepository
}

func NewBoardService(
	boardRepository ports.BoardRepository,
	taskRepository ports.TaskRepository,
	userRepository ports.UserRepository,
) *BoardService {
	return &BoardService{
		boardRepository: boardRepository,
		taskRepository:  taskRepository,
		userRepository:  userRepository,
	}
}

func (s *BoardService) ListBoards(ctx context.Context, userID uint64) ([]domain.BoardSummary, error) {
	return s.boardRepository.ListForUser(ctx, userID)
}

func (s *BoardService) CreateBoard(ctx context.Context, userID uint64, input domain.CreateBoardInput) (domain.BoardDetail, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.BoardDetail{}, domain.NewValidationError("name", apierrors.MsgBoardNameRequired)
	}

	board, err := s.boardRepository.Create(ctx, name, userID)
	if err != nil {
		return domain.BoardDetail{}, err
	}

	if len(input.MemberIDs) > 0 {
		memberIDs, err := s.resolveMemberIDs(ctx, input.MemberIDs, userID)
		if err != nil {
			return domain.BoardDetail{}, err
		}
		if err := s.boardRepository.SetMembers(ctx, board.ID, memberIDs); err != nil {
			return domain.BoardDetail{}, err
		}
	}

	return s.boardDetail(ctx, board, false)
}

func (s *BoardService) GetBoard(ctx context.Context, userID, boardID uint64) (domain.BoardDetail, error) {
	board, err := s.boardRepository.GetByID(ctx, boardID)
	if err != nil {
		return domain.BoardDetail{}, err
	}

	rel, err := s.boardRepository.Relation(ctx, boardID, userID)
	if err != nil {
		return domain.BoardDetail{}, err
	}
	if !access.Allowed(access.EntityBoard, access.ActionRead, rel) {
		// Inaccessible boards read as missing so their existence never leaks.
		return domain.BoardDetail{}, domain.ErrBoardNotFound
	}

	return s.boardDetail(ctx, board, true)
}

func (s *BoardService) UpdateBoard(ctx context.Context, userID, boardID uint64, input domain.UpdateBoardInput) (domain.BoardDetail, error) {
	board, err := s.boardRepository.GetByID(ctx, boardID)
	if err != nil {
		return domain.BoardDetail{}, err
	}

	rel, err := s.boardRepository.Relation(ctx, boardID, userID)
	if err != nil {
		return domain.BoardDetail{}, err
	}
	if !access.Allowed(access.EntityBoard, access.ActionUpdate, rel) {
		return domain.BoardDetail{}, domain.ErrForbidden
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domain.BoardDetail{}, domain.NewValidationError("name", apierrors.MsgBoardNameRequired)
		}
		if err := s.boardRepository.UpdateName(ctx, boardID, name); err != nil {
			return domain.BoardDetail{}, err
		}
		board.Name = name
	}

	if input.MembersSet {
		memberIDs, err := s.resolveMemberIDs(ctx, input.MemberIDs, board.OwnerID)
		if err != nil {
			return domain.BoardDetail{}, err
		}
		if err := s.boardRepository.SetMembers(ctx, boardID, memberIDs); err != nil {
			return domain.BoardDetail{}, err
		}
	}

	return s.boardDetail(ctx, board, false)
}

func (s *BoardService) DeleteBoard(ctx context.Context, userID, boardID uint64) error {
	if _, err := s.boardRepository.GetByID(ctx, boardID); err != nil {
		return err
	}

	rel, err := s.boardRepository.Relation(ctx, boardID, userID)
	if err != nil {
		return err
	}
	if !access.Allowed(access.EntityBoard, access.ActionDelete, rel) {
		return domain.ErrForbidden
	}

	return s.boardRepository.Delete(ctx, boardID)
}

// resolveMemberIDs keeps only ids that reference existing users and never the
// owner: owner membership is implicit and not stored. Unknown ids are
// silently dropped.
func (s *BoardService) resolveMemberIDs(ctx context.Context, ids []uint64, ownerID uint64) ([]uint64, error) {
	existing, err := s.userRepository.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	memberIDs := make([]uint64, 0, len(existing))
	for _, id := range existing {
		if id == ownerID {
			continue
		}
		memberIDs = append(memberIDs, id)
	}
	return memberIDs, nil
}

func (s *BoardService) boardDetail(ctx context.Context, board domain.Board, withTasks bool) (domain.BoardDetail, error) {
	owner, err := s.userRepository.GetByID(ctx, board.OwnerID)
	if err != nil {
		return domain.BoardDetail{}, err
	}

	members, err := s.boardRepository.Members(ctx, board.ID)
	if err != nil {
		return domain.BoardDetail{}, err
	}

	detail := domain.BoardDetail{Board: board, Owner: owner, Members: members}
	if withTasks {
		tasks, err := s.taskRepository.ListByBoard(ctx, board.ID)
		if err != nil {
			return domain.BoardDetail{}, err
		}
		detail.Tasks = tasks
	}
	return detail, nil
}

var _ ports.BoardService = (*BoardService)(nil)
