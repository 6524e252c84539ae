package mapper

import (
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

func ToBoardListItems(boards []domain.BoardSummary) []dto.BoardListItem {
	items := make([]dto.BoardListItem, 0, len(boards))
	for _, board := range boards {
		items = append(items, dto.BoardListItem{
			ID:                 board.ID,
			Title:              board.Name,
			OwnerID:            board.OwnerID,
			MemberCount:        board.MemberCount,
			TicketCount:        board.TicketCount,
			TasksToDoCount:     board.TasksToDoCount,
			TasksHighPrioCount: board.TasksHighPrioCount,
		})
	}
	return items
}

func ToBoardDetail(detail domain.BoardDetail) dto.BoardDetail {
	tasks := make([]dto.BoardTaskItem, 0, len(detail.Tasks))
	for _, task := range detail.Tasks {
		tasks = append(tasks, dto.BoardTaskItem{
			ID:            task.ID,
			Title:         task.Title,
			Description:   task.Description,
			Status:        string(task.Status),
			Priority:      task.Priority,
			Assignee:      toOptionalUserMini(task.Assignee),
			Reviewer:      toOptionalUserMini(task.Reviewer),
			DueDate:       formatDueDate(task.DueDate),
			CommentsCount: task.CommentsCount,
		})
	}

	return dto.BoardDetail{
		ID:      detail.ID,
		Title:   detail.Name,
		OwnerID: detail.OwnerID,
		Members: ToUserMinis(detail.Members),
		Tasks:   tasks,
	}
}

func ToBoardUpdateResponse(detail domain.BoardDetail) dto.BoardUpdateResponse {
	return dto.BoardUpdateResponse{
		ID:          detail.ID,
		Title:       detail.Name,
		OwnerData:   ToUserMini(detail.Owner),
		MembersData: ToUserMinis(detail.Members),
	}
}
