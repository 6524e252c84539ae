package mapper

import (
	"time"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Board:       task.BoardID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    task.Priority,
		Assignee:    toOptionalUserMini(task.Assignee),
		Reviewer:    toOptionalUserMini(task.Reviewer),
		DueDate:     formatDueDate(task.DueDate),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func formatDueDate(dueDate *time.Time) *string {
	if dueDate == nil {
		return nil
	}
	value := dueDate.Format("2006-01-02")
	return &value
}
